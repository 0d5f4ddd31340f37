package shared

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/fluentfox-api/internal/domain"
	"github.com/phrazzld/fluentfox-api/internal/platform/logger"
	"github.com/phrazzld/fluentfox-api/internal/redact"
	"github.com/phrazzld/fluentfox-api/internal/service/auth"
	"github.com/phrazzld/fluentfox-api/internal/store"
)

// UnexpectedErrorMessage is returned for every unclassified failure.
const UnexpectedErrorMessage = "An unexpected error occurred."

// Problem is the client-facing description of a failed request.
type Problem struct {
	Status  int
	Code    string
	Message string
	Details []string
}

// Errors returns the envelope error list: the code followed by any details.
func (p Problem) Errors() []string {
	errs := make([]string, 0, len(p.Details)+1)
	errs = append(errs, p.Code)
	return append(errs, p.Details...)
}

var kindStatus = map[domain.Kind]int{
	domain.KindValidation:   http.StatusUnprocessableEntity,
	domain.KindConflict:     http.StatusConflict,
	domain.KindUnauthorized: http.StatusUnauthorized,
	domain.KindNotFound:     http.StatusNotFound,
	domain.KindForbidden:    http.StatusForbidden,
	domain.KindBadRequest:   http.StatusBadRequest,
	domain.KindInternal:     http.StatusInternalServerError,
}

// Normalize maps any error to a Problem. It is the only place errors are
// turned into HTTP status codes. Internal failures never expose their text.
func Normalize(err error) Problem {
	var de *domain.Error
	if errors.As(err, &de) {
		if de.Kind == domain.KindInternal {
			return internalProblem()
		}
		return Problem{
			Status:  kindStatus[de.Kind],
			Code:    de.Kind.String(),
			Message: de.Message,
			Details: append([]string(nil), de.Violations...),
		}
	}

	switch {
	case errors.Is(err, store.ErrEmailExists):
		return problemOf(domain.KindConflict, "A user with this email already exists")
	case errors.Is(err, store.ErrUserNotFound):
		return problemOf(domain.KindNotFound, "User not found")
	case errors.Is(err, auth.ErrExpiredToken):
		return problemOf(domain.KindUnauthorized, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		return problemOf(domain.KindUnauthorized, "Invalid token")
	case errors.Is(err, store.ErrInvalidEntity):
		return problemOf(domain.KindBadRequest, "Invalid entity data")
	default:
		return internalProblem()
	}
}

func problemOf(kind domain.Kind, message string) Problem {
	return Problem{Status: kindStatus[kind], Code: kind.String(), Message: message}
}

func internalProblem() Problem {
	return problemOf(domain.KindInternal, UnexpectedErrorMessage)
}

// RespondWithAPIError normalizes err, logs it and writes the error envelope.
//
// Log level strategy:
// - 5xx errors: ERROR level with the redacted cause
// - 4xx errors: WARN level
func RespondWithAPIError(w http.ResponseWriter, r *http.Request, err error) {
	p := Normalize(err)

	log := logger.FromContextOrDefault(r.Context(), slog.Default())
	attrs := []slog.Attr{
		slog.String("request_id", GetRequestID(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status_code", p.Status),
		slog.String("error_code", p.Code),
		slog.String("user_message", p.Message),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	level := slog.LevelWarn
	if p.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	log.LogAttrs(r.Context(), level, "API error response", attrs...)

	RespondWithJSON(w, r, p.Status, NewErrorEnvelope(p.Message, p.Errors()))
}
