package api

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/phrazzld/fluentfox-api/internal/api/shared"
	"github.com/phrazzld/fluentfox-api/internal/config"
	"github.com/phrazzld/fluentfox-api/internal/platform/logger"
)

const (
	// APIName is reported by the info endpoint.
	APIName = "FluentFox API"
	// APIVersion is reported by the info endpoint.
	APIVersion = "v1.0.0"
)

// ConfigHandler exposes read-only views of the running configuration.
// Secrets are never included.
type ConfigHandler struct {
	cfg      config.Config
	hostname func() (string, error)
	logger   *slog.Logger
}

// NewConfigHandler creates a new ConfigHandler
func NewConfigHandler(cfg config.Config, logger *slog.Logger) *ConfigHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConfigHandler{
		cfg:      cfg,
		hostname: os.Hostname,
		logger:   logger.With(slog.String("component", "config_handler")),
	}
}

// GetCORS handles GET /api/configuration/cors
func (h *ConfigHandler) GetCORS(w http.ResponseWriter, r *http.Request) {
	logger.FromContextOrDefault(r.Context(), h.logger).Info("CORS configuration requested")

	cors := h.cfg.CORS
	// Keep JSON arrays for unset lists.
	if cors.AllowedOrigins == nil {
		cors.AllowedOrigins = []string{}
	}
	if cors.AllowedHeaders == nil {
		cors.AllowedHeaders = []string{}
	}
	if cors.AllowedMethods == nil {
		cors.AllowedMethods = []string{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cors)
}

// GetInfo handles GET /api/configuration/info
func (h *ConfigHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	machine, err := h.hostname()
	if err != nil {
		log.Warn("failed to read hostname", slog.String("error", err.Error()))
		machine = "unknown"
	}

	environment := h.cfg.Server.Environment
	if environment == "" {
		environment = "Unknown"
	}

	log.Info("API info requested")
	shared.RespondWithJSON(w, r, http.StatusOK, ConfigInfoResponse{
		APIName:       APIName,
		Version:       APIVersion,
		Environment:   environment,
		ServerTime:    shared.Now(),
		MachineName:   machine,
		CORSEnabled:   len(h.cfg.CORS.AllowedOrigins) > 0,
		JWTConfigured: h.cfg.JWT.IsValid(),
	})
}

// GetJWT handles GET /api/configuration/jwt
func (h *ConfigHandler) GetJWT(w http.ResponseWriter, r *http.Request) {
	logger.FromContextOrDefault(r.Context(), h.logger).Info("JWT configuration status requested")

	jwt := h.cfg.JWT
	shared.RespondWithJSON(w, r, http.StatusOK, JWTStatusResponse{
		IsValid:       jwt.IsValid(),
		Issuer:        jwt.Issuer,
		Audience:      jwt.Audience,
		ExpireMinutes: jwt.ExpireMinutes,
		KeyConfigured: jwt.Key != "",
	})
}

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "Healthy",
		Timestamp: time.Now().UTC(),
	})
}
