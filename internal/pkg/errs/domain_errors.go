package errs

import "errors"

// Domain-specific sentinel errors for the lifecycle usecase layers
var (
	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
