package entity

import "errors"

// Failure taxonomy for the booking engine. Handlers map these to HTTP
// statuses with errors.Is; everything unmatched is a storage failure and
// surfaces as a generic "try again".
var (
	ErrTrainNotFound   = errors.New("train not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrProfileNotFound = errors.New("profile not found")
)

var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrValidation             = errors.New("validation error")
)

// ErrPNRConflict marks a reservation-code collision on insert. It never
// reaches a caller: the booking flow regenerates the code and retries.
var ErrPNRConflict = errors.New("reservation code already exists")
