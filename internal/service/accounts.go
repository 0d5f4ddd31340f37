package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/fluentfox-api/internal/domain"
	"github.com/phrazzld/fluentfox-api/internal/service/auth"
	"github.com/phrazzld/fluentfox-api/internal/store"
)

// accountCreator holds the steps shared by self-service registration and
// user creation through the users endpoints. The payload must already be
// validated.
type accountCreator struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	logger *slog.Logger
}

func (c accountCreator) create(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	// Fail fast before paying for the hash; the store re-checks atomically.
	if _, err := c.users.GetByEmail(ctx, req.Email); err == nil {
		c.logger.Debug("email already registered", "email", domain.NormalizeEmail(req.Email))
		return nil, domain.NewConflictError(msgEmailExists, store.ErrEmailExists)
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return nil, classifyStoreError(err, 0)
	}

	dob, err := domain.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, domain.NewValidationError([]string{"Date of birth must be a valid date (YYYY-MM-DD)"})
	}

	hash, err := c.hasher.Hash(req.Password)
	if err != nil {
		c.logger.Error("failed to hash password", "error", err)
		return nil, domain.NewInternalError("", fmt.Errorf("failed to hash password: %w", err))
	}

	user, err := domain.NewUser(req.FirstName, req.LastName, req.Email, req.PhoneNumber, dob, hash)
	if err != nil {
		return nil, domain.NewInternalError("", fmt.Errorf("failed to build user: %w", err))
	}

	if err := c.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			c.logger.Debug("email registered concurrently", "email", domain.NormalizeEmail(req.Email))
		} else {
			c.logger.Error("failed to save user", "error", err)
		}
		return nil, classifyStoreError(err, 0)
	}

	return user, nil
}

func isClientError(err error) bool {
	return domain.KindOf(err) != domain.KindInternal
}
