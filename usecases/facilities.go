package usecases

import (
	"errors"

	"hotel-server/entities"
	"hotel-server/repositories"
)

type FacilityUseCase struct {
	facilityRepo repositories.FacilityRepository
}

func NewFacilityUseCase(facilityRepo repositories.FacilityRepository) *FacilityUseCase {
	return &FacilityUseCase{facilityRepo: facilityRepo}
}

func (uc *FacilityUseCase) Create(facility *entities.Facility) error {
	if facility.Name == "" {
		return errors.New("facility name is required")
	}
	return uc.facilityRepo.Create(facility)
}

func (uc *FacilityUseCase) GetAll() ([]entities.Facility, error) {
	return uc.facilityRepo.GetAll()
}
