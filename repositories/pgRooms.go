package repositories

import (
	"hotel-server/db"
	"hotel-server/entities"
)

type roomPgRepository struct {
	db db.Database
}

func NewRoomPgRepository(database db.Database) RoomRepository {
	return &roomPgRepository{db: database}
}

func (r *roomPgRepository) Create(room *entities.Room) error {
	return r.db.GetDB().Create(room).Error
}

func (r *roomPgRepository) GetAll() ([]entities.Room, error) {
	var rooms []entities.Room
	err := r.db.GetDB().Find(&rooms).Error
	return rooms, err
}

func (r *roomPgRepository) GetByID(id uint) (*entities.Room, error) {
	var room entities.Room
	err := r.db.GetDB().Where("id = ?", id).First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}
