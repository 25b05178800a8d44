package errs

import "errors"

// Error taxonomy shared by the use case layer and the HTTP boundary.
// Lower layers keep their own errors and get marked with one of these.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrGateway      = errors.New("payment gateway error")
	ErrInvalidState = errors.New("invalid state transition")

	// ErrPaymentNotApplied narrows ErrConflict: money was captured but no slot was booked.
	ErrPaymentNotApplied = errors.New("payment not applied to slot")

	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation error")

	// Idempotency errors
	ErrIdempotencyInProgress = errors.New("idempotency in progress")
	ErrIdempotencyKeyReused  = errors.New("idempotency key reused with different request")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrRateLimited             = errors.New("rate limited")
)
