package infra

import (
	"errors"
	"log/slog"

	"studio-agenda/internal/pkg/errs"
)

type GatewayErrorKind string

// GatewayError describes a failed call to the platform backend.
type GatewayError struct {
	Kind      GatewayErrorKind
	Operation string
	Status    int
	msg       string
	err       error // wrapped low-level error
}

// Error prints msg once: a wrapped cause already carries it as its prefix.
func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.Operation + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.Operation + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

// WrapGatewayErr logs the failure and marks it with the taxonomy sentinel of its kind.
func WrapGatewayErr(slogger *slog.Logger, kind GatewayErrorKind, operation string, status int, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.String("operation", operation),
	}
	if status != 0 {
		logArgs = append(logArgs, slog.Int("status", status))
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
		err = errs.Wrap(err, msg)
	}

	slogger.Warn("Gateway error: "+msg, logArgs...)

	return errs.Mark(GatewayError{Kind: kind, Operation: operation, Status: status, msg: msg, err: err}, kind.Sentinel())
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Sentinel maps the kind onto the shared error taxonomy.
func (k GatewayErrorKind) Sentinel() error {
	switch k {
	case KindAuth:
		return errs.ErrAuth
	case KindNotFound:
		return errs.ErrNotFound
	case KindConflict:
		return errs.ErrConflict
	default:
		return errs.ErrNetwork
	}
}

// Gateway error kinds
const (
	KindNetwork  GatewayErrorKind = "NETWORK"
	KindAuth     GatewayErrorKind = "AUTH"
	KindConflict GatewayErrorKind = "CONFLICT"
	KindNotFound GatewayErrorKind = "NOT_FOUND"
	KindDecode   GatewayErrorKind = "DECODE"
)
