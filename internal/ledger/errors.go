package ledger

import "errors"

// Operation failures are reported through these sentinels, wrapped with
// context where useful. Callers discriminate with errors.Is; every failed
// operation leaves the ledger state unchanged.
var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrDuplicateUser   = errors.New("email is already registered")
	ErrUnknownUser     = errors.New("email is not registered")
	ErrWrongPassword   = errors.New("incorrect password")
	ErrNotAuthorized   = errors.New("operation not permitted for this session")
	ErrInvalidNumber   = errors.New("not a valid number")
	ErrTrainNotFound   = errors.New("invalid train id")
	ErrBookingNotFound = errors.New("booking not found or invalid number of seats to cancel")
	ErrNotEnoughSeats  = errors.New("not enough seats available")
)
