package domain

import "errors"

// Domain errors.
var (
	ErrNoActiveSession = &Error{code: "no_active_session", msg: "no active session"}
	ErrEventNotFound   = &Error{code: "event_not_found", msg: "event not found"}
	ErrConflict        = &Error{code: "already_processed", msg: "event already processed"}
)

// Error is a domain error carrying a stable code. Adapters resolve the code
// to a user-facing message through the translator.
type Error struct {
	code string
	msg  string
}

func (e *Error) Error() string { return e.msg }

// ValidationError rejects a single conversation input. It never advances the
// session; the same prompt is reissued.
type ValidationError struct {
	Reason string // stable code, e.g. "title_required"
}

func (e *ValidationError) Error() string { return "validation: " + e.Reason }

// Validation builds a ValidationError with the given reason code.
func Validation(reason string) error { return &ValidationError{Reason: reason} }

// IsValidation reports whether err is a step input rejection.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Code returns the stable error code of err, or "" when err carries none.
// Errors without a code are treated as internal failures by the adapters.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason
	}
	return ""
}
