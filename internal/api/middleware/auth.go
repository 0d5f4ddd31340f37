package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/fluentfox-api/internal/api/shared"
	"github.com/phrazzld/fluentfox-api/internal/domain"
	"github.com/phrazzld/fluentfox-api/internal/service/auth"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the bearer token from the Authorization header and
// adds its claims to the request context. Every failure is a 401 envelope.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithAPIError(w, r,
				domain.NewUnauthorizedError("Authorization header required", auth.ErrMissingToken))
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			shared.RespondWithAPIError(w, r,
				domain.NewUnauthorizedError("Invalid authorization format", auth.ErrInvalidToken))
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), strings.TrimSpace(token))
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Token expired"
			}
			// ValidateToken fails closed, so any error is an authentication failure.
			shared.RespondWithAPIError(w, r, domain.NewUnauthorizedError(message, err))
			return
		}

		ctx := shared.SetClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
