package store

import (
	"context"

	"github.com/phrazzld/fluentfox-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Implementations own their synchronization; every method is safe for
// concurrent use. Returned users are copies the caller may modify freely.
type UserStore interface {
	// Create saves a new user, assigning the next sequential ID to user.ID.
	// The email uniqueness check and the insert happen atomically.
	// Returns ErrEmailExists if the email is taken (case-insensitive).
	// Returns ErrInvalidEntity if the user fails domain validation.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int) (*domain.User, error)

	// GetByEmail retrieves a user by email, compared case-insensitively.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns every user ordered by ID.
	List(ctx context.Context) ([]*domain.User, error)

	// Update replaces an existing user's fields, including HashedPassword.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmailExists if the new email belongs to another user.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int) error
}
