package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/fluentfox-api/internal/config"
	"github.com/phrazzld/fluentfox-api/internal/platform/memory"
	"github.com/phrazzld/fluentfox-api/internal/platform/metrics"
	"github.com/phrazzld/fluentfox-api/internal/service"
	"github.com/phrazzld/fluentfox-api/internal/service/auth"
	"github.com/phrazzld/fluentfox-api/internal/store"
	"github.com/phrazzld/fluentfox-api/internal/validation"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	metrics *metrics.Metrics
	users   store.UserStore

	jwtService     auth.JWTService
	authService    service.AuthService
	userService    service.UserService
	weatherService service.WeatherService
}

// newApplication creates a new application instance with all dependencies
// initialized. Every service shares one in-memory user directory.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	return newApplicationWithMetrics(cfg, logger, metrics.New())
}

func newApplicationWithMetrics(
	cfg *config.Config,
	logger *slog.Logger,
	m *metrics.Metrics,
) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config:  cfg,
		logger:  logger,
		metrics: m,
		users:   memory.NewUserStore(),
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"issuer", cfg.JWT.Issuer,
		"expire_minutes", cfg.JWT.ExpireMinutes)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	v := validation.New()

	app.authService, err = service.NewAuthService(app.users, hasher, app.jwtService, v, m, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	app.userService, err = service.NewUserService(app.users, hasher, v, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize user service: %w", err)
	}

	app.weatherService = service.NewWeatherService(v, logger)

	return app, nil
}
