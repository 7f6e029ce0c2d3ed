package booking

import "errors"

var (
	ErrMissingDates  = errors.New("check-in and check-out are required")
	ErrDateOrder     = errors.New("check-out must be after check-in")
	ErrMissingFields = errors.New("missing required fields")
	ErrGuestCount    = errors.New("invalid guest count")
	ErrNotAvailable  = errors.New("dates are not available")
	ErrNotFound      = errors.New("booking not found")
	ErrInvalidStatus = errors.New("invalid status")
)
