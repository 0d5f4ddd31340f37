package shared

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/fluentfox-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	tests := []struct {
		name        string
		body        io.Reader
		wantErr     bool
		wantMessage string
	}{
		{name: "valid json", body: strings.NewReader(`{"name": "test", "age": 30}`)},
		{
			name:        "trailing comma",
			body:        strings.NewReader(`{"name": "test", "age": 30,}`),
			wantErr:     true,
			wantMessage: "Invalid request format",
		},
		{
			name:        "empty body",
			body:        strings.NewReader(""),
			wantErr:     true,
			wantMessage: "Request body is required",
		},
		{
			name:        "wrong type",
			body:        strings.NewReader(`{"age": "thirty"}`),
			wantErr:     true,
			wantMessage: "Invalid request format",
		},
		{
			name:        "two documents",
			body:        strings.NewReader(`{"name": "a"} {"name": "b"}`),
			wantErr:     true,
			wantMessage: "Invalid request format",
		},
		{
			name:        "too large",
			body:        strings.NewReader(`{"name": "` + strings.Repeat("a", MaxBodyBytes) + `"}`),
			wantErr:     true,
			wantMessage: "Request body is too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", tt.body)
			w := httptest.NewRecorder()

			var p payload
			err := DecodeJSON(w, req, &p)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "test", p.Name)
				assert.Equal(t, 30, p.Age)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrBadRequest)
			var de *domain.Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.wantMessage, de.Message)
		})
	}
}
