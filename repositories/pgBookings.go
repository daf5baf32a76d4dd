package repositories

import (
	"hotel-server/db"
	"hotel-server/entities"

	"gorm.io/gorm"
)

type bookingPgRepository struct {
	db db.Database
}

func NewBookingPgRepository(database db.Database) BookingRepository {
	return &bookingPgRepository{db: database}
}

func (r *bookingPgRepository) Create(booking *entities.Booking) error {
	return r.db.GetDB().Create(booking).Error
}

func (r *bookingPgRepository) GetByID(id uint) (*entities.Booking, error) {
	var booking entities.Booking
	err := r.db.GetDB().
		Preload("Guests").
		Preload("Room").
		Preload("Facilities").
		Preload("User").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingPgRepository) GetAll() ([]entities.Booking, error) {
	var bookings []entities.Booking
	err := r.db.GetDB().
		Preload("Guests").
		Preload("Room").
		Preload("Facilities").
		Preload("User").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingPgRepository) GetAllWithOwner() ([]entities.Booking, error) {
	var bookings []entities.Booking
	err := r.db.GetDB().Preload("User").Find(&bookings).Error
	return bookings, err
}

func (r *bookingPgRepository) Update(booking *entities.Booking) error {
	return r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(booking).Association("Guests").Replace(booking.Guests); err != nil {
			return err
		}
		if err := tx.Model(booking).Association("Facilities").Replace(booking.Facilities); err != nil {
			return err
		}
		return tx.Omit("Guests", "Facilities", "Room", "User").Save(booking).Error
	})
}

// DeleteOwned removes the booking only when it belongs to userID. The join
// rows reference the booking, so they go first, scoped by the same ownership
// subselect; the conditional parent delete then decides the outcome. A
// non-owner caller matches nothing at any step.
func (r *bookingPgRepository) DeleteOwned(id, userID uint) (int64, error) {
	var affected int64
	err := r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM booking_guests WHERE booking_id IN (SELECT id FROM bookings WHERE id = ? AND user_id = ?)",
			id, userID).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"DELETE FROM booking_facilities WHERE booking_id IN (SELECT id FROM bookings WHERE id = ? AND user_id = ?)",
			id, userID).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&entities.Booking{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

func (r *bookingPgRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Booking{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
