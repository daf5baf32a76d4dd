package repositories

import (
	"hotel-server/db"
	"hotel-server/entities"
)

type facilityPgRepository struct {
	db db.Database
}

func NewFacilityPgRepository(database db.Database) FacilityRepository {
	return &facilityPgRepository{db: database}
}

func (r *facilityPgRepository) Create(facility *entities.Facility) error {
	return r.db.GetDB().Create(facility).Error
}

func (r *facilityPgRepository) GetAll() ([]entities.Facility, error) {
	var facilities []entities.Facility
	err := r.db.GetDB().Find(&facilities).Error
	return facilities, err
}

func (r *facilityPgRepository) GetByIDs(ids []uint) ([]entities.Facility, error) {
	var facilities []entities.Facility
	if len(ids) == 0 {
		return facilities, nil
	}
	err := r.db.GetDB().Where("id IN ?", ids).Find(&facilities).Error
	return facilities, err
}
