package errs

import "errors"

// Cross-layer sentinels shared by handlers and usecases
var (
	// Office errors
	ErrOfficeNotFound = errors.New("office not found")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNotPriceable     = errors.New("selection is not priceable")
	ErrDuplicateBooking = errors.New("duplicate booking request")

	// Idempotency errors
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
