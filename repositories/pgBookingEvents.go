package repositories

import (
	"hotel-server/db"
	"hotel-server/entities"
)

type bookingEventPgRepository struct {
	db db.Database
}

func NewBookingEventPgRepository(database db.Database) BookingEventRepository {
	return &bookingEventPgRepository{db: database}
}

func (r *bookingEventPgRepository) CreateBatch(events []entities.BookingEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.GetDB().Create(&events).Error
}

func (r *bookingEventPgRepository) Recent(limit int) ([]entities.BookingEvent, error) {
	var events []entities.BookingEvent
	err := r.db.GetDB().Order("occurred_at DESC").Limit(limit).Find(&events).Error
	return events, err
}
