package main

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/phrazzld/fluentfox-api/internal/api"
	apiMiddleware "github.com/phrazzld/fluentfox-api/internal/api/middleware"
	"github.com/phrazzld/fluentfox-api/internal/config"
)

// corsMethods is the method list used when the configuration allows any.
var corsMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
	http.MethodDelete, http.MethodHead, http.MethodOptions,
}

// corsOptions translates the configured policy. An empty origin list
// allows any origin.
func corsOptions(cfg config.CORSConfig) cors.Options {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	methods := cfg.AllowedMethods
	if len(methods) == 0 || slices.Contains(methods, "*") {
		methods = corsMethods
	}

	headers := cfg.AllowedHeaders
	if len(headers) == 0 {
		headers = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   methods,
		AllowedHeaders:   headers,
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           300,
	}
}

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(apiMiddleware.RequestLogger(app.logger))
	r.Use(chimw.RealIP)
	r.Use(apiMiddleware.Recoverer)
	r.Use(apiMiddleware.Metrics(app.metrics))
	r.Use(cors.Handler(corsOptions(app.config.CORS)))

	authHandler := api.NewAuthHandler(app.authService, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.logger)
	weatherHandler := api.NewWeatherHandler(app.weatherService, app.logger)
	configHandler := api.NewConfigHandler(*app.config, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Get("/weatherforecast", weatherHandler.GetForecast)
		r.Get("/weatherforecast/{date}", weatherHandler.GetForecastForDate)

		r.Route("/configuration", func(r chi.Router) {
			r.Get("/cors", configHandler.GetCORS)
			r.Get("/info", configHandler.GetInfo)
			r.Get("/jwt", configHandler.GetJWT)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/auth/change-password", authHandler.ChangePassword)
			r.Get("/auth/me", authHandler.Me)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.ListUsers)
				r.Post("/", userHandler.CreateUser)
				r.Get("/{id}", userHandler.GetUser)
				r.Put("/{id}", userHandler.UpdateUser)
				r.Delete("/{id}", userHandler.DeleteUser)
			})
		})
	})

	r.Get("/health", api.Health)
	r.Handle("/metrics", app.metrics.Handler())

	return r
}
