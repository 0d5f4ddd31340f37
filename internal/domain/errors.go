package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an application error. The HTTP layer maps each kind to a
// status code and error code; nothing below it formats status codes.
type Kind int

const (
	// KindInternal is any failure that cannot be classified more precisely.
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindUnauthorized
	KindNotFound
	KindForbidden
	KindBadRequest
)

// String returns the wire error code for the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindConflict:
		return "CONFLICT"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindNotFound:
		return "NOT_FOUND"
	case KindForbidden:
		return "FORBIDDEN"
	case KindBadRequest:
		return "BAD_REQUEST"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

// Sentinel errors, one per kind. An *Error matches the sentinel of its kind
// with errors.Is, so callers can test the class of a failure without
// caring about the concrete message.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("resource conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("access forbidden")
	ErrBadRequest   = errors.New("bad request")
	ErrInternal     = errors.New("internal error")
)

var kindSentinels = map[Kind]error{
	KindValidation:   ErrValidation,
	KindConflict:     ErrConflict,
	KindUnauthorized: ErrUnauthorized,
	KindNotFound:     ErrNotFound,
	KindForbidden:    ErrForbidden,
	KindBadRequest:   ErrBadRequest,
	KindInternal:     ErrInternal,
}

// Error is a classified application error. Message is always safe to show
// to API clients; Err carries the underlying cause for logs only.
type Error struct {
	Kind       Kind
	Message    string
	Violations []string
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if len(e.Violations) > 0 {
		msg = fmt.Sprintf("%s: %v", msg, e.Violations)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// NewValidationError returns a validation error listing every violated rule.
func NewValidationError(violations []string) *Error {
	v := make([]string, len(violations))
	copy(v, violations)
	return &Error{Kind: KindValidation, Message: "Validation failed", Violations: v}
}

// NewConflictError returns an error for a unique-key collision.
func NewConflictError(message string, cause error) *Error {
	if message == "" {
		message = "Resource conflict"
	}
	return &Error{Kind: KindConflict, Message: message, Err: cause}
}

// NewUnauthorizedError returns an error for missing or invalid credentials.
func NewUnauthorizedError(message string, cause error) *Error {
	if message == "" {
		message = "Unauthorized access"
	}
	return &Error{Kind: KindUnauthorized, Message: message, Err: cause}
}

// NewNotFoundError returns an error for a missing entity.
func NewNotFoundError(message string, cause error) *Error {
	if message == "" {
		message = "Resource not found"
	}
	return &Error{Kind: KindNotFound, Message: message, Err: cause}
}

// NewForbiddenError returns an error for a permission failure.
func NewForbiddenError(message string, cause error) *Error {
	if message == "" {
		message = "Access forbidden"
	}
	return &Error{Kind: KindForbidden, Message: message, Err: cause}
}

// NewBadRequestError returns an error for a request that is malformed
// independently of individual field values.
func NewBadRequestError(message string, cause error) *Error {
	if message == "" {
		message = "Bad request"
	}
	return &Error{Kind: KindBadRequest, Message: message, Err: cause}
}

// NewInternalError returns an error for an unexpected failure.
func NewInternalError(message string, cause error) *Error {
	if message == "" {
		message = "An internal server error occurred"
	}
	return &Error{Kind: KindInternal, Message: message, Err: cause}
}

// KindOf returns the kind of the first classified error in err's chain.
// Unclassified errors are KindInternal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
