package common

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures so the transport layer can map them to an
// HTTP status without string matching.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindAccessDenied ErrorKind = "ACCESS_DENIED"
	KindValidation   ErrorKind = "VALIDATION"
	KindProjection   ErrorKind = "PROJECTION"
	KindInternal     ErrorKind = "INTERNAL"
)

// Error is the service-layer error carrying its taxonomy kind.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func AccessDeniedf(format string, args ...any) *Error {
	return &Error{Kind: KindAccessDenied, Message: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Projectionf(format string, args ...any) *Error {
	return &Error{Kind: KindProjection, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected store or infrastructure error.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf extracts the taxonomy kind, defaulting to KindInternal for errors
// that did not originate in this package.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
