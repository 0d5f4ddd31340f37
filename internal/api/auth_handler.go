package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/fluentfox-api/internal/api/shared"
	"github.com/phrazzld/fluentfox-api/internal/domain"
	"github.com/phrazzld/fluentfox-api/internal/platform/logger"
	"github.com/phrazzld/fluentfox-api/internal/service"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authService service.AuthService
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService service.AuthService, logger *slog.Logger) *AuthHandler {
	if authService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("authService cannot be nil for AuthHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthHandler{
		authService: authService,
		logger:      logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req domain.RegisterRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	log.Info("registering new user", slog.String("email", req.Email))

	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "User registered successfully", userToResponse(user))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req domain.LoginRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	log.Info("user logging in", slog.String("email", req.Email))

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "User logged in successfully", LoginResponse{
		Token:   result.Token,
		Expires: result.ExpiresAt.UTC(),
		User:    userToResponse(result.User),
	})
}

// ChangePassword handles POST /api/auth/change-password for the caller.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	var req domain.ChangePasswordRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	if err := h.authService.ChangePassword(r.Context(), userID, req); err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, "Password changed successfully")
}

// Me handles GET /api/auth/me and returns the caller's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	user, err := h.authService.CurrentUser(r.Context(), userID)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "User retrieved successfully", userToResponse(user))
}
