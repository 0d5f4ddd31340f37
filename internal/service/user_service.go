package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/fluentfox-api/internal/domain"
	"github.com/phrazzld/fluentfox-api/internal/service/auth"
	"github.com/phrazzld/fluentfox-api/internal/store"
	"github.com/phrazzld/fluentfox-api/internal/validation"
)

// UserService provides user management operations
type UserService interface {
	// ListUsers returns every user ordered by ID
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// GetUser retrieves a user by their ID
	GetUser(ctx context.Context, id int) (*domain.User, error)

	// CreateUser validates the payload and creates a user with a hashed password
	CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error)

	// UpdateUser replaces the profile fields of user id on behalf of actorID.
	// Only the owner of a record may update it.
	UpdateUser(ctx context.Context, actorID, id int, req domain.UpdateUserRequest) (*domain.User, error)

	// DeleteUser removes user id on behalf of actorID.
	// Only the owner of a record may delete it.
	DeleteUser(ctx context.Context, actorID, id int) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	users     store.UserStore
	validator *validation.Validator
	accounts  accountCreator
	logger    *slog.Logger
}

// Ensure UserServiceImpl implements UserService interface
var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService
func NewUserService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	validator *validation.Validator,
	logger *slog.Logger,
) (*UserServiceImpl, error) {
	if users == nil {
		return nil, fmt.Errorf("users cannot be nil")
	}
	if hasher == nil {
		return nil, fmt.Errorf("hasher cannot be nil")
	}
	if validator == nil {
		return nil, fmt.Errorf("validator cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	log := logger.With("component", "user_service")
	return &UserServiceImpl{
		users:     users,
		validator: validator,
		accounts:  accountCreator{users: users, hasher: hasher, logger: log},
		logger:    log,
	}, nil
}

// ListUsers implements UserService.ListUsers
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, classifyStoreError(err, 0)
	}

	s.logger.Debug("listed users", "count", len(users))
	return users, nil
}

// GetUser implements UserService.GetUser
func (s *UserServiceImpl) GetUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found", "user_id", id)
		} else {
			s.logger.Error("failed to retrieve user", "error", err, "user_id", id)
		}
		return nil, classifyStoreError(err, id)
	}

	return user, nil
}

// CreateUser implements UserService.CreateUser
func (s *UserServiceImpl) CreateUser(
	ctx context.Context,
	req domain.CreateUserRequest,
) (*domain.User, error) {
	if err := s.validator.Check(req); err != nil {
		return nil, err
	}

	user, err := s.accounts.create(ctx, domain.RegisterRequest(req))
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID)
	return user, nil
}

// UpdateUser implements UserService.UpdateUser
// Following the pattern of getting the complete user first, then replacing
// the profile fields and passing the whole record back to the store.
func (s *UserServiceImpl) UpdateUser(
	ctx context.Context,
	actorID, id int,
	req domain.UpdateUserRequest,
) (*domain.User, error) {
	if err := s.validator.Check(req); err != nil {
		return nil, err
	}

	user, err := s.ownedUser(ctx, actorID, id)
	if err != nil {
		return nil, err
	}

	dob, err := domain.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, domain.NewValidationError([]string{"Date of birth must be a valid date (YYYY-MM-DD)"})
	}

	updated, err := domain.NewUser(req.FirstName, req.LastName, req.Email, req.PhoneNumber, dob,
		user.HashedPassword)
	if err != nil {
		return nil, domain.NewInternalError("", fmt.Errorf("failed to build user: %w", err))
	}
	updated.ID = user.ID
	updated.CreatedAt = user.CreatedAt

	if err := s.users.Update(ctx, updated); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("update to an email owned by another user", "user_id", id)
		} else if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to update user", "error", err, "user_id", id)
		}
		return nil, classifyStoreError(err, id)
	}

	s.logger.Info("user updated", "user_id", id)
	return updated, nil
}

// DeleteUser implements UserService.DeleteUser
func (s *UserServiceImpl) DeleteUser(ctx context.Context, actorID, id int) error {
	if _, err := s.ownedUser(ctx, actorID, id); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to delete user", "error", err, "user_id", id)
		}
		return classifyStoreError(err, id)
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}

// ownedUser loads user id and checks that actorID owns it. A missing user
// is reported before ownership.
func (s *UserServiceImpl) ownedUser(ctx context.Context, actorID, id int) (*domain.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.ID != actorID {
		s.logger.Warn("attempt to modify another user's record",
			"actor_id", actorID,
			"user_id", id)
		return nil, domain.NewForbiddenError(msgNotOwned, ErrNotOwned)
	}

	return user, nil
}
