package service

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrKind int

const (
	ErrKindValidation ErrKind = iota + 1
	ErrKindNotFound
	ErrKindExternalStore
	ErrKindPersistence
)

// Error is a service failure with a stable kind the HTTP layer maps to a
// status code. Validation and not-found are terminal for the caller;
// external-store and persistence failures mean nothing was committed.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case ErrKindValidation:
		return http.StatusUnprocessableEntity
	case ErrKindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func errValidation(format string, args ...any) *Error {
	return &Error{Kind: ErrKindValidation, Msg: fmt.Sprintf(format, args...)}
}

func errNotFound(format string, args ...any) *Error {
	return &Error{Kind: ErrKindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func errExternalStore(err error) *Error {
	return &Error{Kind: ErrKindExternalStore, Msg: "object store request failed", Err: err}
}

func errPersistence(err error) *Error {
	return &Error{Kind: ErrKindPersistence, Msg: "persistence failure", Err: err}
}

// KindOf extracts the service error kind, or 0 for foreign errors.
func KindOf(err error) ErrKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}
