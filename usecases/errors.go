package usecases

import "errors"

var (
	// ErrEmailTaken is returned when registering an email that already has
	// an account.
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("wrong email or password")
	// ErrForbidden is returned when a user touches a booking owned by
	// someone else.
	ErrForbidden = errors.New("no permission for this booking")
	// ErrNotFound is returned when the requested booking does not exist.
	ErrNotFound = errors.New("booking not found")
	// ErrInvalidReference is returned when a guest, room or facility id in
	// a booking request does not resolve.
	ErrInvalidReference = errors.New("referenced guest, room or facility does not exist")
)
