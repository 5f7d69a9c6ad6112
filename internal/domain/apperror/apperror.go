package apperror

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a domain service matches exactly one of
// these through errors.Is.
var (
	ErrValidation          = errors.New("validation error")
	ErrNotFoundOrForbidden = errors.New("not found or forbidden")
	ErrConflict            = errors.New("conflict")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrStorage             = errors.New("storage failure")
)

var kinds = []error{
	ErrValidation,
	ErrNotFoundOrForbidden,
	ErrConflict,
	ErrUnauthenticated,
	ErrStorage,
}

// Error is a domain error with a message that is safe to show to clients.
type Error struct {
	kind    error
	message string
}

func New(kind error, message string) *Error {
	return &Error{kind: kind, message: message}
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.kind
}

// Kind returns the kind err belongs to, or nil for unclassified errors.
func Kind(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// Storage classifies an unexpected driver error as ErrStorage. Errors that
// already carry a kind pass through untouched.
func Storage(err error) error {
	if err == nil || Kind(err) != nil {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
