package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/fluentfox-api/internal/domain"
	"github.com/phrazzld/fluentfox-api/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// They are wrapped inside classified domain errors, so callers can check them
// with errors.Is while the API layer maps the outer kind.
var (
	// ErrNotOwned indicates a caller tried to modify another user's record.
	// Wrapped in a forbidden error.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrInvalidCredentials indicates the email was unknown or the password
	// did not verify. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Client-facing messages.
const (
	msgEmailExists        = "A user with this email already exists"
	msgInvalidCredentials = "Invalid email or password"
	msgWrongPassword      = "Current password is incorrect"
	msgUnknownAccount     = "The authenticated account no longer exists"
	msgNotOwned           = "You can only modify your own account"
)

func userNotFoundMessage(id int) string {
	return fmt.Sprintf("User with ID %d not found", id)
}

// classifyStoreError converts user directory errors into classified domain
// errors. id is used for the not-found message; pass 0 when unknown.
func classifyStoreError(err error, id int) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrEmailExists):
		return domain.NewConflictError(msgEmailExists, err)
	case errors.Is(err, store.ErrUserNotFound):
		if id > 0 {
			return domain.NewNotFoundError(userNotFoundMessage(id), err)
		}
		return domain.NewNotFoundError("User not found", err)
	default:
		return domain.NewInternalError("", err)
	}
}
