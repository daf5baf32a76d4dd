package usecases

import (
	"errors"
	"fmt"

	"hotel-server/entities"
	"hotel-server/repositories"

	"gorm.io/gorm"
)

type UpdateUserRequest struct {
	FirstName string `json:"firstname" binding:"required"`
	LastName  string `json:"lastname" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

// UserUseCase exposes account lookups and profile updates.
type UserUseCase struct {
	userRepo repositories.UserRepository
}

func NewUserUseCase(userRepo repositories.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// PublicUser re-reads the account from the store and returns its sanitized
// projection. Always a fresh read: ownership and identity decisions never
// trust a cached user.
func (uc *UserUseCase) PublicUser(id uint) (*entities.User, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}

// Update replaces the profile fields of the account and returns the new
// public projection.
func (uc *UserUseCase) Update(id uint, req UpdateUserRequest) (*entities.User, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email

	if err := uc.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	public := user.Public()
	return &public, nil
}
