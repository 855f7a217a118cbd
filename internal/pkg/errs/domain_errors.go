package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Present errors
	ErrPresentNotFound    = errors.New("present not found")
	ErrOwnPresentAction   = errors.New("cannot act on own present")
	ErrInvalidTransition  = errors.New("invalid present state transition")
	ErrTransitionConflict = errors.New("present transition lost a concurrent update")
	ErrBoughtNotReserver  = errors.New("only the reserver can toggle bought")
	ErrBoughtNotReserved  = errors.New("present is not reserved")

	// Monitor errors
	ErrUpstreamUnavailable = errors.New("sensor data unavailable")

	// Push errors
	ErrEndpointNotFound = errors.New("push endpoint not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
