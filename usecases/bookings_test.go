package usecases

import (
	"testing"
	"time"

	"hotel-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	uc          *BookingUseCase
	bookingRepo *fakeBookingRepo
	userRepo    *fakeUserRepo
	ownerID     uint
	otherID     uint
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	userRepo := newFakeUserRepo()
	owner := &entities.User{FirstName: "Anna", LastName: "F", Email: "a@x.com", Password: "hash-a"}
	require.NoError(t, userRepo.Create(owner))
	other := &entities.User{FirstName: "Boris", LastName: "G", Email: "b@x.com", Password: "hash-b"}
	require.NoError(t, userRepo.Create(other))

	guestRepo := newFakeGuestRepo(
		entities.Guest{ID: 1, FirstName: "Mark", LastName: "Solberg"},
		entities.Guest{ID: 2, FirstName: "Anna", LastName: "Egorova"},
		entities.Guest{ID: 3, FirstName: "Daniel", LastName: "Glebov"},
	)
	roomRepo := newFakeRoomRepo(
		entities.Room{ID: 5, Number: "101", Capacity: 2},
		entities.Room{ID: 6, Number: "201", Capacity: 4},
	)
	facilityRepo := newFakeFacilityRepo(
		entities.Facility{ID: 3, Name: "Spa"},
		entities.Facility{ID: 4, Name: "Parking"},
	)

	bookingRepo := newFakeBookingRepo()
	users := NewUserUseCase(userRepo)

	return &bookingFixture{
		uc:          NewBookingUseCase(bookingRepo, guestRepo, roomRepo, facilityRepo, users),
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		ownerID:     owner.ID,
		otherID:     other.ID,
	}
}

func validRequest() BookingRequest {
	return BookingRequest{
		BookingNumber: "BK-1001",
		DateFrom:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DateTo:        time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Guests:        []uint{1, 2},
		Room:          5,
		Facilities:    []uint{3},
	}
}

func TestCreateResolvesAndStamps(t *testing.T) {
	f := newBookingFixture(t)

	before := time.Now().UTC()
	booking, err := f.uc.Create(validRequest(), f.ownerID)
	require.NoError(t, err)

	assert.Equal(t, "BK-1001", booking.BookingNumber)
	assert.False(t, booking.CreateDate.Before(before), "creation time is stamped server-side")
	assert.Equal(t, f.ownerID, booking.UserID)
	assert.Empty(t, booking.User.Password, "owner projection is sanitized")
	assert.Len(t, booking.Guests, 2)
	assert.Equal(t, uint(5), booking.Room.ID)
	assert.Len(t, booking.Facilities, 1)
}

func TestCreateRejectsUnknownReferences(t *testing.T) {
	f := newBookingFixture(t)

	req := validRequest()
	req.Guests = []uint{1, 99}
	_, err := f.uc.Create(req, f.ownerID)
	assert.ErrorIs(t, err, ErrInvalidReference, "unknown guest id")

	req = validRequest()
	req.Room = 99
	_, err = f.uc.Create(req, f.ownerID)
	assert.ErrorIs(t, err, ErrInvalidReference, "unknown room id")

	req = validRequest()
	req.Facilities = []uint{99}
	_, err = f.uc.Create(req, f.ownerID)
	assert.ErrorIs(t, err, ErrInvalidReference, "unknown facility id")

	all, err := f.bookingRepo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all, "rejected requests persist nothing")
}

func TestGetEnforcesOwnership(t *testing.T) {
	f := newBookingFixture(t)

	created, err := f.uc.Create(validRequest(), f.ownerID)
	require.NoError(t, err)

	booking, err := f.uc.Get(created.ID, f.ownerID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, booking.ID)
	assert.Len(t, booking.Guests, 2)
	assert.Empty(t, booking.User.Password)

	_, err = f.uc.Get(created.ID, f.otherID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.uc.Get(9999, f.ownerID)
	assert.ErrorIs(t, err, ErrNotFound, "missing booking is not-found, not forbidden")
}

func TestGetAllFiltersByOwner(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.uc.Create(validRequest(), f.ownerID)
	require.NoError(t, err)

	mine, err := f.uc.GetAll(f.ownerID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "BK-1001", mine[0].BookingNumber)
	assert.Empty(t, mine[0].User.Password)

	theirs, err := f.uc.GetAll(f.otherID)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestUpdateReplacesEveryMutableField(t *testing.T) {
	f := newBookingFixture(t)

	created, err := f.uc.Create(validRequest(), f.ownerID)
	require.NoError(t, err)
	createDate := created.CreateDate

	updated, err := f.uc.Update(created.ID, BookingRequest{
		BookingNumber: "BK-2002",
		DateFrom:      time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		DateTo:        time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		Guests:        []uint{3},
		Room:          6,
		Facilities:    []uint{},
	}, f.ownerID)
	require.NoError(t, err)

	assert.Equal(t, "BK-2002", updated.BookingNumber)
	assert.Equal(t, createDate, updated.CreateDate, "creation time is immutable")
	require.Len(t, updated.Guests, 1)
	assert.Equal(t, uint(3), updated.Guests[0].ID)
	assert.Equal(t, uint(6), updated.Room.ID)
	assert.Empty(t, updated.Facilities, "facilities not re-supplied do not persist")
	assert.Empty(t, updated.User.Password)

	stored, err := f.bookingRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "BK-2002", stored.BookingNumber)
	assert.Len(t, stored.Guests, 1)
}

func TestUpdateEnforcesOwnership(t *testing.T) {
	f := newBookingFixture(t)

	created, err := f.uc.Create(validRequest(), f.ownerID)
	require.NoError(t, err)

	_, err = f.uc.Update(created.ID, validRequest(), f.otherID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.uc.Update(9999, validRequest(), f.ownerID)
	assert.ErrorIs(t, err, ErrNotFound)

	stored, err := f.bookingRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "BK-1001", stored.BookingNumber, "forbidden update changes nothing")
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	f := newBookingFixture(t)

	created, err := f.uc.Create(validRequest(), f.ownerID)
	require.NoError(t, err)

	err = f.uc.Delete(created.ID, f.otherID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, f.uc.Delete(created.ID, f.ownerID))

	_, err = f.uc.Get(created.ID, f.ownerID)
	assert.ErrorIs(t, err, ErrNotFound, "deleted booking is gone for everyone")

	err = f.uc.Delete(created.ID, f.ownerID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetIncompleteOmitsAssociations(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.uc.Create(validRequest(), f.ownerID)
	require.NoError(t, err)

	mine, err := f.uc.GetIncomplete(f.ownerID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	entry := mine[0]
	assert.Equal(t, "BK-1001", entry.BookingNumber)
	assert.Equal(t, "a@x.com", entry.User.Email)
	assert.Empty(t, entry.User.Password)

	theirs, err := f.uc.GetIncomplete(f.otherID)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestDuplicateRequestIDsAreDeduplicated(t *testing.T) {
	f := newBookingFixture(t)

	req := validRequest()
	req.Guests = []uint{1, 1, 2}
	req.Facilities = []uint{3, 3}

	booking, err := f.uc.Create(req, f.ownerID)
	require.NoError(t, err)
	assert.Len(t, booking.Guests, 2)
	assert.Len(t, booking.Facilities, 1)
}
