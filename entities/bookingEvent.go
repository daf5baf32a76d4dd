package entities

import "time"

// Booking lifecycle actions recorded in the audit trail.
const (
	BookingCreated = "booking_created"
	BookingUpdated = "booking_updated"
	BookingDeleted = "booking_deleted"
)

// BookingEvent is one audit row describing a booking mutation. Events are
// buffered in memory and flushed in batches, so persistence is best-effort.
type BookingEvent struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Action        string    `gorm:"index" json:"action"`
	BookingID     uint      `gorm:"index" json:"booking_id"`
	BookingNumber string    `json:"bookingnumber"`
	UserID        uint      `gorm:"index" json:"user_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}
