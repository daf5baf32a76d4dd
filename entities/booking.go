package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is a stay reservation: one room, any number of guests and
// facilities, owned by exactly one user (the creator). Ownership is the only
// authorization boundary for reading or mutating a booking.
type Booking struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	BookingNumber string     `json:"bookingnumber"`
	CreateDate    time.Time  `json:"createdate"`
	DateFrom      time.Time  `json:"datefrom"`
	DateTo        time.Time  `json:"dateto"`
	UserID        uint       `gorm:"not null;index" json:"-"`
	User          User       `json:"user"`
	RoomID        uint       `json:"-"`
	Room          Room       `json:"room"`
	Guests        []Guest    `gorm:"many2many:booking_guests" json:"guests"`
	Facilities    []Facility `gorm:"many2many:booking_facilities" json:"facilities"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.BookingNumber == "" {
		b.BookingNumber = NewBookingNumber()
	}
	return
}

// NewBookingNumber generates a short human-readable booking reference.
func NewBookingNumber() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

// IncompleteBooking is the summary view of a booking: number, dates and owner
// only, no room/guest/facility associations.
type IncompleteBooking struct {
	ID            uint      `json:"id"`
	BookingNumber string    `json:"bookingnumber"`
	DateFrom      time.Time `json:"datefrom"`
	DateTo        time.Time `json:"dateto"`
	User          User      `json:"user"`
}

// Incomplete projects the booking into its summary view.
func (b Booking) Incomplete() IncompleteBooking {
	return IncompleteBooking{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		DateFrom:      b.DateFrom,
		DateTo:        b.DateTo,
		User:          b.User,
	}
}
