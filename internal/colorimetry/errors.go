package colorimetry

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers match them with errors.Is; the concrete
// *Error carries the human-readable reason.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrInsufficientPalette = errors.New("insufficient palette")
)

// Error is the structured condition returned by every engine operation.
type Error struct {
	Kind   error
	Reason string
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *Error) Unwrap() error { return e.Kind }

// InvalidInput builds an ErrInvalidInput condition.
func InvalidInput(format string, args ...any) error {
	return &Error{Kind: ErrInvalidInput, Reason: fmt.Sprintf(format, args...)}
}

// ProfileNotFound builds an ErrProfileNotFound condition for userID.
func ProfileNotFound(userID string) error {
	return &Error{Kind: ErrProfileNotFound, Reason: fmt.Sprintf("no profile for user %q", userID)}
}

// InsufficientPalette builds an ErrInsufficientPalette condition.
func InsufficientPalette(format string, args ...any) error {
	return &Error{Kind: ErrInsufficientPalette, Reason: fmt.Sprintf(format, args...)}
}

// Reason returns the human-readable part of an engine error, or err.Error()
// for anything else.
func Reason(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return err.Error()
}

// KindOf returns a short label for the error kind, used for metrics and
// tool output. Unknown errors report "internal".
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrProfileNotFound):
		return "profile_not_found"
	case errors.Is(err, ErrInsufficientPalette):
		return "insufficient_palette"
	default:
		return "internal"
	}
}
