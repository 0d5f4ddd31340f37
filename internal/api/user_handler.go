package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/phrazzld/fluentfox-api/internal/api/shared"
	"github.com/phrazzld/fluentfox-api/internal/domain"
	"github.com/phrazzld/fluentfox-api/internal/platform/logger"
	"github.com/phrazzld/fluentfox-api/internal/service"
)

// UserHandler handles the /api/users resource. Every route requires an
// authenticated caller.
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	if userService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("userService cannot be nil for UserHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserHandler{
		userService: userService,
		logger:      logger.With(slog.String("component", "user_handler")),
	}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "Users retrieved successfully", usersToResponse(users))
}

// GetUser handles GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "User retrieved successfully", userToResponse(user))
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req domain.CreateUserRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	log.Info("creating new user", slog.String("email", req.Email))

	user, err := h.userService.CreateUser(r.Context(), req)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/users/"+strconv.Itoa(user.ID))
	shared.RespondWithData(w, r, http.StatusCreated, "User created successfully", userToResponse(user))
}

// UpdateUser handles PUT /api/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	actorID, err := currentUserID(r)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	var req domain.UpdateUserRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), actorID, id, req)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "User updated successfully", userToResponse(user))
}

// DeleteUser handles DELETE /api/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actorID, err := currentUserID(r)
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	if err := h.userService.DeleteUser(r.Context(), actorID, id); err != nil {
		shared.RespondWithAPIError(w, r, err)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, "User deleted successfully")
}
