package errs

import "errors"

// Domain-specific sentinel errors for the booking core
var (
	// Reservation errors
	ErrDuplicateBooking = errors.New("duplicate booking")
	ErrCapacityExceeded = errors.New("slot capacity exceeded")
	ErrBookingNotFound  = errors.New("booking not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Availability errors
	ErrInvalidSlotRange = errors.New("invalid slot hour range")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
