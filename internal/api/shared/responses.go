package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Envelope is the uniform wrapper for every response body.
// Errors is always a JSON array, empty on success.
type Envelope struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      any       `json:"data"`
	Errors    []string  `json:"errors"`
	Timestamp time.Time `json:"timestamp"`
}

// Now returns the envelope timestamp. Tests may replace it.
var Now = func() time.Time { return time.Now().UTC() }

// NewSuccessEnvelope wraps data in a successful envelope.
func NewSuccessEnvelope(message string, data any) Envelope {
	return Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Errors:    []string{},
		Timestamp: Now(),
	}
}

// NewErrorEnvelope builds a failed envelope with no data.
func NewErrorEnvelope(message string, errs []string) Envelope {
	if errs == nil {
		errs = []string{}
	}
	return Envelope{
		Success:   false,
		Message:   message,
		Errors:    errs,
		Timestamp: Now(),
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode JSON response", "error", err)
	}
}

// RespondWithData writes a successful envelope carrying data.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	RespondWithJSON(w, r, status, NewSuccessEnvelope(message, data))
}

// RespondWithMessage writes a successful envelope without data.
func RespondWithMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, NewSuccessEnvelope(message, nil))
}
