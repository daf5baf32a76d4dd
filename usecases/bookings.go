package usecases

import (
	"errors"
	"fmt"
	"time"

	"hotel-server/entities"
	"hotel-server/repositories"

	"gorm.io/gorm"
)

// BookingRequest is the payload for both create and update. Update has
// full-replace semantics: every mutable field must be supplied, nothing is
// carried over from the previous version.
type BookingRequest struct {
	BookingNumber string    `json:"bookingnumber"`
	DateFrom      time.Time `json:"datefrom" binding:"required"`
	DateTo        time.Time `json:"dateto" binding:"required"`
	Guests        []uint    `json:"guests"`
	Room          uint      `json:"room" binding:"required"`
	Facilities    []uint    `json:"facilities"`
}

// BookingUseCase implements the booking lifecycle. Every operation authorizes
// against current ownership read from the store; nothing is cached between
// requests.
type BookingUseCase struct {
	bookingRepo  repositories.BookingRepository
	guestRepo    repositories.GuestRepository
	roomRepo     repositories.RoomRepository
	facilityRepo repositories.FacilityRepository
	users        *UserUseCase
}

func NewBookingUseCase(
	bookingRepo repositories.BookingRepository,
	guestRepo repositories.GuestRepository,
	roomRepo repositories.RoomRepository,
	facilityRepo repositories.FacilityRepository,
	users *UserUseCase,
) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo:  bookingRepo,
		guestRepo:    guestRepo,
		roomRepo:     roomRepo,
		facilityRepo: facilityRepo,
		users:        users,
	}
}

// resolveReferences loads the guests, room and facilities named in the
// request. Any id that does not resolve fails the whole request with
// ErrInvalidReference instead of silently dropping the entry.
func (uc *BookingUseCase) resolveReferences(req BookingRequest) ([]entities.Guest, *entities.Room, []entities.Facility, error) {
	guestIDs := dedupe(req.Guests)
	guests, err := uc.guestRepo.GetByIDs(guestIDs)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load guests: %w", err)
	}
	if len(guests) != len(guestIDs) {
		return nil, nil, nil, ErrInvalidReference
	}

	room, err := uc.roomRepo.GetByID(req.Room)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, ErrInvalidReference
		}
		return nil, nil, nil, fmt.Errorf("failed to load room: %w", err)
	}

	facilityIDs := dedupe(req.Facilities)
	facilities, err := uc.facilityRepo.GetByIDs(facilityIDs)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load facilities: %w", err)
	}
	if len(facilities) != len(facilityIDs) {
		return nil, nil, nil, ErrInvalidReference
	}

	return guests, room, facilities, nil
}

// Create builds a booking from the request, stamps the creation time
// server-side and attributes it to userID. Any caller-supplied creation time
// is ignored.
func (uc *BookingUseCase) Create(req BookingRequest, userID uint) (*entities.Booking, error) {
	guests, room, facilities, err := uc.resolveReferences(req)
	if err != nil {
		return nil, err
	}

	owner, err := uc.users.PublicUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}

	booking := &entities.Booking{
		BookingNumber: req.BookingNumber,
		CreateDate:    time.Now().UTC(),
		DateFrom:      req.DateFrom,
		DateTo:        req.DateTo,
		UserID:        userID,
		RoomID:        room.ID,
		Room:          *room,
		Guests:        guests,
		Facilities:    facilities,
	}

	if err := uc.bookingRepo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.User = *owner
	return booking, nil
}

// GetAll returns the bookings owned by userID with all associations
// populated, in storage order. Other users' bookings are filtered out after
// the load; the owner on each result is the fresh public projection.
func (uc *BookingUseCase) GetAll(userID uint) ([]entities.Booking, error) {
	bookings, err := uc.bookingRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	result := []entities.Booking{}
	for _, b := range bookings {
		if b.UserID != userID {
			continue
		}
		owner, err := uc.users.PublicUser(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load owner: %w", err)
		}
		b.User = *owner
		result = append(result, b)
	}
	return result, nil
}

// Get returns the booking when userID owns it. A missing booking is
// ErrNotFound; a booking under another owner is ErrForbidden.
func (uc *BookingUseCase) Get(id, userID uint) (*entities.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	if booking.UserID != userID {
		return nil, ErrForbidden
	}

	owner, err := uc.users.PublicUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}
	booking.User = *owner
	return booking, nil
}

// Update fully replaces booking number, dates, guest set, room and facility
// set on the booking owned by userID. Ownership is re-read from the store in
// the same call; the creation timestamp is never touched.
func (uc *BookingUseCase) Update(id uint, req BookingRequest, userID uint) (*entities.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	if booking.UserID != userID {
		return nil, ErrForbidden
	}

	guests, room, facilities, err := uc.resolveReferences(req)
	if err != nil {
		return nil, err
	}

	booking.BookingNumber = req.BookingNumber
	booking.DateFrom = req.DateFrom
	booking.DateTo = req.DateTo
	booking.RoomID = room.ID
	booking.Room = *room
	booking.Guests = guests
	booking.Facilities = facilities
	booking.User = entities.User{}

	if err := uc.bookingRepo.Update(booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	owner, err := uc.users.PublicUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}
	booking.User = *owner
	return booking, nil
}

// Delete removes the booking when userID owns it. The ownership check and the
// removal are one conditional statement, and the call returns only after the
// store has confirmed the delete.
func (uc *BookingUseCase) Delete(id, userID uint) error {
	affected, err := uc.bookingRepo.DeleteOwned(id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if affected > 0 {
		return nil
	}

	exists, err := uc.bookingRepo.Exists(id)
	if err != nil {
		return fmt.Errorf("failed to check booking: %w", err)
	}
	if exists {
		return ErrForbidden
	}
	return ErrNotFound
}

// GetIncomplete returns summary views of the bookings owned by userID. The
// load populates only the owner association, skipping the guest/room/facility
// joins.
func (uc *BookingUseCase) GetIncomplete(userID uint) ([]entities.IncompleteBooking, error) {
	bookings, err := uc.bookingRepo.GetAllWithOwner()
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	result := []entities.IncompleteBooking{}
	for _, b := range bookings {
		if b.UserID != userID {
			continue
		}
		owner, err := uc.users.PublicUser(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load owner: %w", err)
		}
		b.User = *owner
		result = append(result, b.Incomplete())
	}
	return result, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
