// Package apperr defines the error kinds shared by every layer. Domain packages build
// their sentinel errors on top of these kinds and the HTTP layer maps a kind to a status.
package apperr

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrUpstream   = errors.New("upstream failure")
	ErrConflict   = errors.New("conflict")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// New returns an error with message msg that matches kind under errors.Is.
func New(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Kind reports which of the known kinds err belongs to, or nil.
func Kind(err error) error {
	for _, k := range []error{ErrNotFound, ErrValidation, ErrConflict, ErrUpstream} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// Message returns the message of the first domain error in err's chain, or "" when
// err carries none. Wrapping context added by lower layers is not included.
func Message(err error) string {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.msg
	}
	return ""
}
