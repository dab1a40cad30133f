package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Property errors
	ErrPropertyNotFound    = errors.New("property not found")
	ErrPropertyUnavailable = errors.New("property unavailable")

	// Access errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Booking flow errors
	ErrFlowNotFound       = errors.New("booking flow not found")
	ErrInvalidDuration    = errors.New("invalid duration")
	ErrInvalidCheckIn     = errors.New("invalid check-in date")
	ErrDraftLocked        = errors.New("draft cannot be edited in current step")
	ErrIllegalTransition  = errors.New("illegal booking step transition")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrSettlementFailed   = errors.New("settlement failed")
	ErrSettlementTimedOut = errors.New("settlement timed out")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
