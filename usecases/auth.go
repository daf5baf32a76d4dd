package usecases

import (
	"errors"
	"fmt"

	"hotel-server/entities"
	"hotel-server/repositories"
	"hotel-server/token"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	FirstName string `json:"firstname" binding:"required"`
	LastName  string `json:"lastname" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthUseCase handles registration and login.
type AuthUseCase struct {
	userRepo repositories.UserRepository
	tokens   *token.Manager
}

func NewAuthUseCase(userRepo repositories.UserRepository, tokens *token.Manager) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokens: tokens}
}

// Register creates a new account and returns its public projection.
// Registration with an email that already has an account fails with
// ErrEmailTaken and creates nothing.
func (uc *AuthUseCase) Register(req RegisterRequest) (*entities.User, error) {
	_, err := uc.userRepo.GetByEmail(req.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hash),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	public := user.Public()
	return &public, nil
}

// Login verifies credentials and mints a token whose claims carry the user id
// and email only. Unknown email and wrong password are indistinguishable:
// both return ErrInvalidCredentials.
func (uc *AuthUseCase) Login(req LoginRequest) (string, error) {
	user, err := uc.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return uc.tokens.Generate(user.ID, user.Email)
}
