package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/fluentfox-api/internal/config"
)

type testEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

func send(t *testing.T, h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

const adaRegistration = `{
	"firstName": "Ada",
	"lastName": "Lovelace",
	"email": "ada@x.com",
	"phoneNumber": "+10000000000",
	"dateOfBirth": "1990-01-01",
	"password": "Str0ng!Pass",
	"confirmPassword": "Str0ng!Pass"
}`

func TestRouter_RegisterLoginAndProfile(t *testing.T) {
	h := newTestApplication(t, testConfig()).setupRouter()

	w := send(t, h, http.MethodPost, "/api/auth/register", adaRegistration, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, []string{}, env.Errors)
	assert.JSONEq(t, `{
		"id": 1,
		"firstName": "Ada",
		"lastName": "Lovelace",
		"email": "ada@x.com",
		"phoneNumber": "+10000000000",
		"dateOfBirth": "1990-01-01"
	}`, string(env.Data))

	w = send(t, h, http.MethodPost, "/api/auth/login", `{"email":"ADA@X.COM","password":"Str0ng!Pass"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Token   string    `json:"token"`
		Expires time.Time `json:"expires"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &login))
	assert.NotEmpty(t, login.Token)
	assert.True(t, login.Expires.After(time.Now()))

	w = send(t, h, http.MethodGet, "/api/users", "", login.Token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "assword")

	w = send(t, h, http.MethodGet, "/api/users", "", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_RegisterConflictIsCaseInsensitive(t *testing.T) {
	h := newTestApplication(t, testConfig()).setupRouter()

	first := strings.Replace(adaRegistration, "ada@x.com", "A@x.com", 1)
	second := strings.Replace(adaRegistration, "ada@x.com", "a@x.com", 1)

	require.Equal(t, http.StatusOK, send(t, h, http.MethodPost, "/api/auth/register", first, "").Code)

	w := send(t, h, http.MethodPost, "/api/auth/register", second, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, []string{"CONFLICT"}, decodeEnvelope(t, w).Errors)
}

func TestRouter_RequestIDOnEveryResponse(t *testing.T) {
	h := newTestApplication(t, testConfig()).setupRouter()

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"unauthorized", http.MethodGet, "/api/auth/me", http.StatusUnauthorized},
		{"unknown route", http.MethodGet, "/nowhere", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := send(t, h, tt.method, tt.path, "", "")
			assert.Equal(t, tt.status, w.Code)
			_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
			assert.NoError(t, err)
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := newTestApplication(t, testConfig()).setupRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSOptions(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.CORSConfig
		wantOrigins []string
		wantMethods []string
		wantHeaders []string
	}{
		{
			name:        "empty config allows any origin",
			cfg:         config.CORSConfig{},
			wantOrigins: []string{"*"},
			wantMethods: corsMethods,
			wantHeaders: []string{"*"},
		},
		{
			name: "explicit lists are kept",
			cfg: config.CORSConfig{
				AllowedOrigins: []string{"https://fluentfox.com"},
				AllowedMethods: []string{"GET", "POST"},
				AllowedHeaders: []string{"Content-Type", "Authorization"},
			},
			wantOrigins: []string{"https://fluentfox.com"},
			wantMethods: []string{"GET", "POST"},
			wantHeaders: []string{"Content-Type", "Authorization"},
		},
		{
			name:        "wildcard methods expand",
			cfg:         config.CORSConfig{AllowedMethods: []string{"*"}},
			wantOrigins: []string{"*"},
			wantMethods: corsMethods,
			wantHeaders: []string{"*"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := corsOptions(tt.cfg)
			assert.Equal(t, tt.wantOrigins, opts.AllowedOrigins)
			assert.Equal(t, tt.wantMethods, opts.AllowedMethods)
			assert.Equal(t, tt.wantHeaders, opts.AllowedHeaders)
			assert.Equal(t, tt.cfg.AllowCredentials, opts.AllowCredentials)
		})
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	h := newTestApplication(t, testConfig()).setupRouter()

	send(t, h, http.MethodGet, "/health", "", "")
	send(t, h, http.MethodPost, "/api/auth/login", `{"email":"ada@x.com","password":"x"}`, "")

	w := send(t, h, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `fluentfox_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.Contains(t, body, `fluentfox_auth_events_total{event="login",outcome="rejected"} 1`)
}

func TestRouter_ConfigurationEndpoints(t *testing.T) {
	h := newTestApplication(t, testConfig()).setupRouter()

	for _, path := range []string{"/api/configuration/cors", "/api/configuration/info", "/api/configuration/jwt"} {
		t.Run(path, func(t *testing.T) {
			w := send(t, h, http.MethodGet, path, "", "")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.False(t, bytes.Contains(w.Body.Bytes(), []byte("test-signing-key")))
		})
	}
}
