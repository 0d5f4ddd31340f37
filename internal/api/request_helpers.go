package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/fluentfox-api/internal/api/shared"
	"github.com/phrazzld/fluentfox-api/internal/domain"
)

// currentUserID returns the ID of the authenticated caller. The auth
// middleware guarantees it on protected routes, so a miss is unauthorized.
func currentUserID(r *http.Request) (int, error) {
	userID, ok := shared.GetUserID(r.Context())
	if !ok {
		return 0, domain.NewUnauthorizedError("User ID not found or invalid", nil)
	}
	return userID, nil
}

// pathID parses a positive integer path parameter.
func pathID(r *http.Request, paramName string) (int, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, domain.NewBadRequestError("User ID is required", nil)
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, domain.NewBadRequestError("User ID must be a positive integer", err)
	}
	return id, nil
}
