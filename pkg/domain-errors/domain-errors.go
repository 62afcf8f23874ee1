package domainerrors

import "errors"

// Code represents a domain error category independent of any caller surface.
// These codes describe what went wrong in national-ID terms, not in terms of
// whatever transport or UI sits above the library.
type Code string

const (
	// The four rejection kinds a construction attempt can end with.
	CodeInvalidFormat      Code = "invalid_format"      // not exactly 14 ASCII digits
	CodeInvalidChecksum    Code = "invalid_checksum"    // checksum requested and failed
	CodeInvalidBirthDate   Code = "invalid_birth_date"  // unsupported century digit or impossible calendar date
	CodeInvalidGovernorate Code = "invalid_governorate" // code outside the fixed governorate set

	// Non-domain plumbing codes.
	CodeInvalidInput Code = "invalid_input"
	CodeValidation   Code = "validation_failed"
	CodeInternal     Code = "internal_error"
)

// Error wraps domain failures with a stable code.
// It is surface-agnostic and can be matched with errors.Is across layers.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new domain error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap creates a new domain error wrapping an existing error.
// If the wrapped error is already a domain error, the original code is preserved.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		// Preserve the original domain code, update message
		return &Error{Code: existing.Code, Message: msg, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode checks if an error is a domain error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsRejection reports whether err carries one of the four construction
// rejection codes. Anything else escaping the parse pipeline is a defect,
// not bad input.
func IsRejection(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Code {
	case CodeInvalidFormat, CodeInvalidChecksum, CodeInvalidBirthDate, CodeInvalidGovernorate:
		return true
	default:
		return false
	}
}
