package errs

import "errors"

// Error taxonomy shared by the gateway, usecases and handlers.
var (
	// Backend collaborator errors
	ErrNetwork  = errors.New("backend unreachable")
	ErrAuth     = errors.New("session unauthenticated or expired")
	ErrConflict = errors.New("request rejected by backend rules")
	ErrNotFound = errors.New("record not found")

	// Booking errors
	ErrCancellationClosed = errors.New("cancellation window closed")
	ErrInvalidClassSlot   = errors.New("invalid class slot")
)
