package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/fluentfox-api/internal/domain"
	"github.com/phrazzld/fluentfox-api/internal/service/auth"
	"github.com/phrazzld/fluentfox-api/internal/store"
	"github.com/phrazzld/fluentfox-api/internal/validation"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// AuthService provides account registration, login and password management.
type AuthService interface {
	// Register validates the payload and creates a new account.
	// Returns a conflict error if the email is taken (case-insensitive).
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)

	// Login exchanges credentials for a session token. An unknown email and
	// a wrong password yield the same unauthorized error.
	Login(ctx context.Context, req domain.LoginRequest) (*LoginResult, error)

	// ChangePassword replaces the password of userID after verifying the
	// current one.
	ChangePassword(ctx context.Context, userID int, req domain.ChangePasswordRequest) error

	// CurrentUser returns the account a validated token refers to.
	CurrentUser(ctx context.Context, userID int) (*domain.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	users     store.UserStore
	hasher    auth.PasswordHasher
	tokens    auth.JWTService
	validator *validation.Validator
	events    AuthEventRecorder
	logger    *slog.Logger
	accounts  accountCreator
}

// Ensure authServiceImpl implements AuthService interface
var _ AuthService = (*authServiceImpl)(nil)

// NewAuthService creates a new AuthService. A nil events recorder
// discards events.
func NewAuthService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.JWTService,
	validator *validation.Validator,
	events AuthEventRecorder,
	logger *slog.Logger,
) (AuthService, error) {
	if users == nil {
		return nil, fmt.Errorf("users cannot be nil")
	}
	if hasher == nil {
		return nil, fmt.Errorf("hasher cannot be nil")
	}
	if tokens == nil {
		return nil, fmt.Errorf("tokens cannot be nil")
	}
	if validator == nil {
		return nil, fmt.Errorf("validator cannot be nil")
	}
	if events == nil {
		events = nopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	log := logger.With("component", "auth_service")
	return &authServiceImpl{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		validator: validator,
		events:    events,
		logger:    log,
		accounts:  accountCreator{users: users, hasher: hasher, logger: log},
	}, nil
}

// Register implements AuthService.Register
func (s *authServiceImpl) Register(
	ctx context.Context,
	req domain.RegisterRequest,
) (user *domain.User, err error) {
	defer func() { s.events.RecordAuthEvent(EventRegister, outcomeOf(err)) }()

	if err := s.validator.Check(req); err != nil {
		s.logger.Debug("registration rejected by validation", "email", req.Email)
		return nil, err
	}

	user, err = s.accounts.create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login implements AuthService.Login
func (s *authServiceImpl) Login(
	ctx context.Context,
	req domain.LoginRequest,
) (result *LoginResult, err error) {
	defer func() { s.events.RecordAuthEvent(EventLogin, outcomeOf(err)) }()

	if err := s.validator.Check(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login for unknown email")
			return nil, domain.NewUnauthorizedError(msgInvalidCredentials, ErrInvalidCredentials)
		}
		s.logger.Error("failed to look up user for login", "error", err)
		return nil, classifyStoreError(err, 0)
	}

	if !s.hasher.Verify(req.Password, user.HashedPassword) {
		s.logger.Debug("login with wrong password", "user_id", user.ID)
		return nil, domain.NewUnauthorizedError(msgInvalidCredentials, ErrInvalidCredentials)
	}

	token, expiresAt, err := s.tokens.GenerateToken(ctx, user)
	if err != nil {
		s.logger.Error("failed to generate token", "error", err, "user_id", user.ID)
		return nil, domain.NewInternalError("", fmt.Errorf("failed to generate token: %w", err))
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// ChangePassword implements AuthService.ChangePassword
func (s *authServiceImpl) ChangePassword(
	ctx context.Context,
	userID int,
	req domain.ChangePasswordRequest,
) (err error) {
	defer func() { s.events.RecordAuthEvent(EventChangePassword, outcomeOf(err)) }()

	if err := s.validator.Check(req); err != nil {
		return err
	}

	user, err := s.accountFor(ctx, userID)
	if err != nil {
		return err
	}

	if !s.hasher.Verify(req.CurrentPassword, user.HashedPassword) {
		s.logger.Debug("password change with wrong current password", "user_id", userID)
		return domain.NewUnauthorizedError(msgWrongPassword, ErrInvalidCredentials)
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err, "user_id", userID)
		return domain.NewInternalError("", fmt.Errorf("failed to hash password: %w", err))
	}

	user.HashedPassword = hash
	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error("failed to store new password", "error", err, "user_id", userID)
		return classifyStoreError(err, userID)
	}

	s.logger.Info("password changed", "user_id", userID)
	return nil
}

// CurrentUser implements AuthService.CurrentUser
func (s *authServiceImpl) CurrentUser(ctx context.Context, userID int) (*domain.User, error) {
	return s.accountFor(ctx, userID)
}

// accountFor loads the account a token subject names. A subject whose
// account was deleted after the token was issued is unauthorized.
func (s *authServiceImpl) accountFor(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("token subject has no account", "user_id", userID)
			return nil, domain.NewUnauthorizedError(msgUnknownAccount, err)
		}
		s.logger.Error("failed to load account", "error", err, "user_id", userID)
		return nil, classifyStoreError(err, userID)
	}
	return user, nil
}
