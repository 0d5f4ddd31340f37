package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/fluentfox-api/internal/api/shared"
	"github.com/phrazzld/fluentfox-api/internal/platform/logger"
	"github.com/phrazzld/fluentfox-api/internal/redact"
)

// maxLoggedBody caps how much of a request body is logged.
const maxLoggedBody = 4096

// RequestLogger assigns every request an ID, echoes it in the X-Request-ID
// response header and stores a request-scoped logger in the context. It
// logs one line when the request starts, including the redacted JSON body,
// and one when it completes.
//
// This middleware should be applied first so every later handler and log
// line can see the request ID.
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := shared.NewRequestID()
			w.Header().Set(shared.RequestIDHeader, requestID)

			log := base.With(slog.String("request_id", requestID))
			ctx := shared.SetRequestID(r.Context(), requestID)
			ctx = logger.WithContext(ctx, log)
			r = r.WithContext(ctx)

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("query", r.URL.RawQuery),
				slog.String("remote_addr", r.RemoteAddr),
			}
			if body, ok := readLoggableBody(r); ok {
				attrs = append(attrs, slog.String("body", body))
			}
			log.Info("request started", attrs...)

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			if status >= http.StatusBadRequest {
				level = slog.LevelWarn
			}
			log.Log(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		})
	}
}

// readLoggableBody reads a JSON body for logging and restores it so the
// handler can still decode it.
func readLoggableBody(r *http.Request) (string, bool) {
	if r.Body == nil || r.ContentLength == 0 {
		return "", false
	}
	if !strings.Contains(strings.ToLower(r.Header.Get("Content-Type")), "application/json") {
		return "", false
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, shared.MaxBodyBytes+1))
	rest := r.Body
	r.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(data), rest), rest}
	if err != nil {
		return "", false
	}

	return redact.JSONBody(data, maxLoggedBody), true
}
