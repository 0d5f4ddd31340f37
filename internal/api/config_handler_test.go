package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/fluentfox-api/internal/config"
)

func TestConfigHandler_GetCORS(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/configuration/cors", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var cors config.CORSConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cors))
	assert.Equal(t, testConfig.CORS, cors)
}

func TestConfigHandler_GetCORS_EmptyLists(t *testing.T) {
	h := NewConfigHandler(config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	w := httptest.NewRecorder()

	h.GetCORS(w, httptest.NewRequest(http.MethodGet, "/api/configuration/cors", nil))

	assert.JSONEq(t,
		`{"allowedOrigins":[],"allowedHeaders":[],"allowedMethods":[],"allowCredentials":false}`,
		w.Body.String())
}

func TestConfigHandler_GetInfo(t *testing.T) {
	h := NewConfigHandler(testConfig, nil)
	h.hostname = func() (string, error) { return "fox-01", nil }
	w := httptest.NewRecorder()

	h.GetInfo(w, httptest.NewRequest(http.MethodGet, "/api/configuration/info", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var info ConfigInfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "FluentFox API", info.APIName)
	assert.Equal(t, "v1.0.0", info.Version)
	assert.Equal(t, "Testing", info.Environment)
	assert.Equal(t, "fox-01", info.MachineName)
	assert.True(t, info.CORSEnabled)
	assert.True(t, info.JWTConfigured)
	assert.False(t, info.ServerTime.IsZero())
}

func TestConfigHandler_GetInfo_Fallbacks(t *testing.T) {
	h := NewConfigHandler(config.Config{}, nil)
	h.hostname = func() (string, error) { return "", errors.New("no hostname") }
	w := httptest.NewRecorder()

	h.GetInfo(w, httptest.NewRequest(http.MethodGet, "/api/configuration/info", nil))

	var info ConfigInfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "Unknown", info.Environment)
	assert.Equal(t, "unknown", info.MachineName)
	assert.False(t, info.CORSEnabled)
	assert.False(t, info.JWTConfigured)
}

func TestConfigHandler_GetJWT(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/configuration/jwt", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), testConfig.JWT.Key)

	var status JWTStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, JWTStatusResponse{
		IsValid:       true,
		Issuer:        "FluentFoxApi",
		Audience:      "FluentFoxClient",
		ExpireMinutes: 60,
		KeyConfigured: true,
	}, status)
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/health", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	var health HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "Healthy", health.Status)
	assert.False(t, health.Timestamp.IsZero())
}
