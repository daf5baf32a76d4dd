package usecases

import (
	"errors"

	"hotel-server/entities"
	"hotel-server/repositories"
)

type RoomUseCase struct {
	roomRepo repositories.RoomRepository
}

func NewRoomUseCase(roomRepo repositories.RoomRepository) *RoomUseCase {
	return &RoomUseCase{roomRepo: roomRepo}
}

func (uc *RoomUseCase) Create(room *entities.Room) error {
	if room.Number == "" {
		return errors.New("room number is required")
	}
	if room.Capacity <= 0 {
		return errors.New("room capacity must be positive")
	}
	return uc.roomRepo.Create(room)
}

func (uc *RoomUseCase) GetAll() ([]entities.Room, error) {
	return uc.roomRepo.GetAll()
}

func (uc *RoomUseCase) Get(id uint) (*entities.Room, error) {
	return uc.roomRepo.GetByID(id)
}
