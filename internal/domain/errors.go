package domain

import "errors"

var (
	ErrBookingNotFound        = errors.New("booking not found")
	ErrBookingNotCancellable  = errors.New("booking cannot be cancelled")
	ErrCancellationInProgress = errors.New("cancellation already in progress")
	ErrRoomTypeNotFound       = errors.New("room type not found")
	ErrInvalidStay            = errors.New("check-out must be after check-in")
	ErrCheckInInPast          = errors.New("check-in date is in the past")
	ErrUnauthenticated        = errors.New("please login to continue")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrSessionNotFound        = errors.New("session not found")
	ErrUnknownMenuItem        = errors.New("unknown menu item")
	ErrInvalidQuantity        = errors.New("quantity must be at least 1")
)

var ErrInvalidInput = errors.New("invalid input")

// ValidationError names the first form field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
