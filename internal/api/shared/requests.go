package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/phrazzld/fluentfox-api/internal/domain"
)

// MaxBodyBytes caps the size of a decoded request body.
const MaxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into v. A missing, oversized or
// malformed body yields a bad request error.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return domain.NewBadRequestError("Request body is required", nil)
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return domain.NewBadRequestError("Request body is required", err)
		case errors.As(err, &maxErr):
			return domain.NewBadRequestError("Request body is too large", err)
		default:
			return domain.NewBadRequestError("Invalid request format", err)
		}
	}
	if dec.More() {
		return domain.NewBadRequestError("Invalid request format", errors.New("unexpected data after JSON body"))
	}
	return nil
}
