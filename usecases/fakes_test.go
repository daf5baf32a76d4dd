package usecases

import (
	"hotel-server/entities"

	"gorm.io/gorm"
)

// In-memory repository fakes backing the use case tests.

type fakeUserRepo struct {
	users  map[uint]entities.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]entities.User)}
}

func (r *fakeUserRepo) Create(user *entities.User) error {
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *entities.User) error {
	r.users[user.ID] = *user
	return nil
}

type fakeGuestRepo struct {
	guests map[uint]entities.Guest
}

func newFakeGuestRepo(guests ...entities.Guest) *fakeGuestRepo {
	r := &fakeGuestRepo{guests: make(map[uint]entities.Guest)}
	for _, g := range guests {
		r.guests[g.ID] = g
	}
	return r
}

func (r *fakeGuestRepo) Create(guest *entities.Guest) error {
	r.guests[guest.ID] = *guest
	return nil
}

func (r *fakeGuestRepo) GetAll() ([]entities.Guest, error) {
	out := make([]entities.Guest, 0, len(r.guests))
	for _, g := range r.guests {
		out = append(out, g)
	}
	return out, nil
}

func (r *fakeGuestRepo) GetByIDs(ids []uint) ([]entities.Guest, error) {
	out := []entities.Guest{}
	for _, id := range ids {
		if g, ok := r.guests[id]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

type fakeRoomRepo struct {
	rooms map[uint]entities.Room
}

func newFakeRoomRepo(rooms ...entities.Room) *fakeRoomRepo {
	r := &fakeRoomRepo{rooms: make(map[uint]entities.Room)}
	for _, room := range rooms {
		r.rooms[room.ID] = room
	}
	return r
}

func (r *fakeRoomRepo) Create(room *entities.Room) error {
	r.rooms[room.ID] = *room
	return nil
}

func (r *fakeRoomRepo) GetAll() ([]entities.Room, error) {
	out := make([]entities.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, room)
	}
	return out, nil
}

func (r *fakeRoomRepo) GetByID(id uint) (*entities.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &room, nil
}

type fakeFacilityRepo struct {
	facilities map[uint]entities.Facility
}

func newFakeFacilityRepo(facilities ...entities.Facility) *fakeFacilityRepo {
	r := &fakeFacilityRepo{facilities: make(map[uint]entities.Facility)}
	for _, f := range facilities {
		r.facilities[f.ID] = f
	}
	return r
}

func (r *fakeFacilityRepo) Create(facility *entities.Facility) error {
	r.facilities[facility.ID] = *facility
	return nil
}

func (r *fakeFacilityRepo) GetAll() ([]entities.Facility, error) {
	out := make([]entities.Facility, 0, len(r.facilities))
	for _, f := range r.facilities {
		out = append(out, f)
	}
	return out, nil
}

func (r *fakeFacilityRepo) GetByIDs(ids []uint) ([]entities.Facility, error) {
	out := []entities.Facility{}
	for _, id := range ids {
		if f, ok := r.facilities[id]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings map[uint]entities.Booking
	order    []uint
	nextID   uint
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uint]entities.Booking)}
}

func (r *fakeBookingRepo) Create(booking *entities.Booking) error {
	r.nextID++
	booking.ID = r.nextID
	r.bookings[booking.ID] = *booking
	r.order = append(r.order, booking.ID)
	return nil
}

func (r *fakeBookingRepo) GetByID(id uint) (*entities.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &booking, nil
}

func (r *fakeBookingRepo) GetAll() ([]entities.Booking, error) {
	out := make([]entities.Booking, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.bookings[id])
	}
	return out, nil
}

func (r *fakeBookingRepo) GetAllWithOwner() ([]entities.Booking, error) {
	out := make([]entities.Booking, 0, len(r.order))
	for _, id := range r.order {
		b := r.bookings[id]
		b.Guests = nil
		b.Facilities = nil
		b.Room = entities.Room{}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) Update(booking *entities.Booking) error {
	if _, ok := r.bookings[booking.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *fakeBookingRepo) DeleteOwned(id, userID uint) (int64, error) {
	booking, ok := r.bookings[id]
	if !ok || booking.UserID != userID {
		return 0, nil
	}
	delete(r.bookings, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func (r *fakeBookingRepo) Exists(id uint) (bool, error) {
	_, ok := r.bookings[id]
	return ok, nil
}
