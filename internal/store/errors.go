package store

import (
	"errors"
	"fmt"
)

// Errors returned by every UserStore implementation. Callers match them
// with errors.Is; implementations may wrap them with more context.
var (
	// ErrNotFound is the class of every missing-record error.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is the class of every unique-key collision.
	ErrDuplicate = errors.New("record already exists")

	// ErrInvalidEntity is returned for a record that could never have passed
	// request validation. The wrapped error names the broken invariant.
	ErrInvalidEntity = errors.New("invalid user record")

	// ErrUserNotFound means no user has the requested ID or email.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrEmailExists means another user already holds the email, compared
	// case-insensitively.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError reports whether err is any kind of missing-record error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is any kind of unique-key collision.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// OpError records which directory operation failed and for which user.
type OpError struct {
	Op     string // "create", "update", "delete", ...
	UserID int    // zero when the user has no ID yet
	Err    error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.UserID > 0 {
		return fmt.Sprintf("user directory %s (user %d): %v", e.Op, e.UserID, e.Err)
	}
	return fmt.Sprintf("user directory %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *OpError) Unwrap() error {
	return e.Err
}

// NewOpError wraps err with the failed operation and user ID.
func NewOpError(op string, userID int, err error) *OpError {
	return &OpError{Op: op, UserID: userID, Err: err}
}
