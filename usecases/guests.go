package usecases

import (
	"errors"

	"hotel-server/entities"
	"hotel-server/repositories"
)

type GuestUseCase struct {
	guestRepo repositories.GuestRepository
}

func NewGuestUseCase(guestRepo repositories.GuestRepository) *GuestUseCase {
	return &GuestUseCase{guestRepo: guestRepo}
}

func (uc *GuestUseCase) Create(guest *entities.Guest) error {
	if guest.FirstName == "" || guest.LastName == "" {
		return errors.New("guest first and last name are required")
	}
	return uc.guestRepo.Create(guest)
}

func (uc *GuestUseCase) GetAll() ([]entities.Guest, error) {
	return uc.guestRepo.GetAll()
}
