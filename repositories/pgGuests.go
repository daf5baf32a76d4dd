package repositories

import (
	"hotel-server/db"
	"hotel-server/entities"
)

type guestPgRepository struct {
	db db.Database
}

func NewGuestPgRepository(database db.Database) GuestRepository {
	return &guestPgRepository{db: database}
}

func (r *guestPgRepository) Create(guest *entities.Guest) error {
	return r.db.GetDB().Create(guest).Error
}

func (r *guestPgRepository) GetAll() ([]entities.Guest, error) {
	var guests []entities.Guest
	err := r.db.GetDB().Find(&guests).Error
	return guests, err
}

func (r *guestPgRepository) GetByIDs(ids []uint) ([]entities.Guest, error) {
	var guests []entities.Guest
	if len(ids) == 0 {
		return guests, nil
	}
	err := r.db.GetDB().Where("id IN ?", ids).Find(&guests).Error
	return guests, err
}
