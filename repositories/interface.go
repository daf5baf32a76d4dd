package repositories

import "hotel-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id uint) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	Update(user *entities.User) error
}

type GuestRepository interface {
	Create(guest *entities.Guest) error
	GetAll() ([]entities.Guest, error)
	GetByIDs(ids []uint) ([]entities.Guest, error)
}

type RoomRepository interface {
	Create(room *entities.Room) error
	GetAll() ([]entities.Room, error)
	GetByID(id uint) (*entities.Room, error)
}

type FacilityRepository interface {
	Create(facility *entities.Facility) error
	GetAll() ([]entities.Facility, error)
	GetByIDs(ids []uint) ([]entities.Facility, error)
}

type BookingRepository interface {
	Create(booking *entities.Booking) error
	// GetByID loads a booking with guests, room, facilities and owner.
	GetByID(id uint) (*entities.Booking, error)
	// GetAll loads every booking with all associations populated.
	GetAll() ([]entities.Booking, error)
	// GetAllWithOwner loads every booking with only the owner association,
	// skipping the heavy guest/room/facility joins.
	GetAllWithOwner() ([]entities.Booking, error)
	// Update persists scalar fields and fully replaces the guest and
	// facility association sets.
	Update(booking *entities.Booking) error
	// DeleteOwned removes the booking only if it belongs to userID, as a
	// single conditional statement. Returns the number of rows removed.
	DeleteOwned(id, userID uint) (int64, error)
	Exists(id uint) (bool, error)
}

type BookingEventRepository interface {
	CreateBatch(events []entities.BookingEvent) error
	Recent(limit int) ([]entities.BookingEvent, error)
}
