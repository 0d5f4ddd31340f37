package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithData(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithData(w, req, http.StatusCreated, "User created successfully", map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var env struct {
		Success   bool           `json:"success"`
		Message   string         `json:"message"`
		Data      map[string]int `json:"data"`
		Errors    []string       `json:"errors"`
		Timestamp time.Time      `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "User created successfully", env.Message)
	assert.Equal(t, 1, env.Data["id"])
	assert.NotNil(t, env.Errors)
	assert.Empty(t, env.Errors)
	assert.WithinDuration(t, time.Now(), env.Timestamp, time.Minute)
}

func TestRespondWithMessage_ErrorsIsEmptyArray(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithMessage(w, req, http.StatusOK, "User deleted successfully")

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.JSONEq(t, `[]`, string(raw["errors"]))
	assert.JSONEq(t, `null`, string(raw["data"]))
}

func TestNewErrorEnvelope_NilErrors(t *testing.T) {
	env := NewErrorEnvelope("boom", nil)
	assert.False(t, env.Success)
	assert.NotNil(t, env.Errors)
	assert.Nil(t, env.Data)
}
