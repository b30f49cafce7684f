package booking

import "errors"

var (
	ErrInvalidTimeOfDay  = errors.New("time of day must be HH:MM between 00:00 and 23:59")
	ErrMissingDuration   = errors.New("either a duration package or a start and end time is required")
	ErrNotPriceable      = errors.New("selected duration does not produce a positive price")
	ErrBookingDateInPast = errors.New("booking date cannot be in the past")
	ErrInvalidPartySize  = errors.New("number of people must be at least 1")
	ErrCapacityExceeded  = errors.New("number of people exceeds office capacity")
	ErrOfficeUnavailable = errors.New("office is not available for booking")
	ErrEmptyFullName     = errors.New("full name cannot be empty")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrEmptyPurpose      = errors.New("purpose cannot be empty")
	ErrFieldTooLong      = errors.New("field exceeds maximum length")
	ErrInvalidStatus     = errors.New("invalid booking status")
)
