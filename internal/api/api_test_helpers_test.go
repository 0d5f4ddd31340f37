package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/fluentfox-api/internal/api/middleware"
	"github.com/phrazzld/fluentfox-api/internal/config"
	"github.com/phrazzld/fluentfox-api/internal/platform/memory"
	"github.com/phrazzld/fluentfox-api/internal/service"
	"github.com/phrazzld/fluentfox-api/internal/service/auth"
	"github.com/phrazzld/fluentfox-api/internal/testutils"
	"github.com/phrazzld/fluentfox-api/internal/validation"
)

var testConfig = config.Config{
	Server: config.ServerConfig{Port: 8080, LogLevel: "info", Environment: "Testing"},
	JWT:    testutils.JWTConfig(),
	CORS: config.CORSConfig{
		AllowedOrigins: []string{"http://localhost:3000"},
		AllowedHeaders: []string{"*"},
		AllowedMethods: []string{"*"},
	},
	Auth: config.AuthConfig{BcryptCost: bcrypt.MinCost},
}

// envelope mirrors shared.Envelope with a typed payload.
type envelope[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    T        `json:"data"`
	Errors  []string `json:"errors"`
}

type testAPI struct {
	t       *testing.T
	handler http.Handler
	tokens  auth.JWTService
}

// newTestAPI mounts every handler on a router backed by a fresh in-memory
// directory, real bcrypt hashing and real tokens.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	log := testutils.DiscardLogger()

	tokens, err := auth.NewJWTService(testConfig.JWT)
	require.NoError(t, err)

	users := memory.NewUserStore()
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	v := validation.New()

	authService, err := service.NewAuthService(users, hasher, tokens, v, nil, log)
	require.NoError(t, err)
	userService, err := service.NewUserService(users, hasher, v, log)
	require.NoError(t, err)

	authHandler := NewAuthHandler(authService, log)
	userHandler := NewUserHandler(userService, log)
	weatherHandler := NewWeatherHandler(service.NewWeatherService(v, log), log)
	configHandler := NewConfigHandler(testConfig, log)
	authMiddleware := middleware.NewAuthMiddleware(tokens)

	r := chi.NewRouter()
	r.Get("/health", Health)
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Get("/weatherforecast", weatherHandler.GetForecast)
		r.Get("/weatherforecast/{date}", weatherHandler.GetForecastForDate)
		r.Get("/configuration/cors", configHandler.GetCORS)
		r.Get("/configuration/info", configHandler.GetInfo)
		r.Get("/configuration/jwt", configHandler.GetJWT)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/auth/change-password", authHandler.ChangePassword)
			r.Get("/auth/me", authHandler.Me)
			r.Get("/users", userHandler.ListUsers)
			r.Post("/users", userHandler.CreateUser)
			r.Get("/users/{id}", userHandler.GetUser)
			r.Put("/users/{id}", userHandler.UpdateUser)
			r.Delete("/users/{id}", userHandler.DeleteUser)
		})
	})

	return &testAPI{t: t, handler: r, tokens: tokens}
}

// do sends a request with an optional JSON body and bearer token.
func (a *testAPI) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			data, err := json.Marshal(body)
			require.NoError(a.t, err)
			raw = string(data)
		}
		reader = bytes.NewBufferString(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)
	return w
}

// register creates an account and returns its ID.
func (a *testAPI) register(req map[string]string) int {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/auth/register", req, "")
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	env := decode[UserResponse](a.t, w)
	return env.Data.ID
}

// login returns a bearer token for the given credentials.
func (a *testAPI) login(email, password string) string {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	return decode[LoginResponse](a.t, w).Data.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func registration(first, email string) map[string]string {
	return map[string]string{
		"firstName":       first,
		"lastName":        "Lovelace",
		"email":           email,
		"phoneNumber":     "+10000000000",
		"dateOfBirth":     "1990-01-01",
		"password":        "Str0ng!Pass",
		"confirmPassword": "Str0ng!Pass",
	}
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
