package httputil

import (
	"encoding/json"
	"net/http"

	"bloglist/internal/domain"
)

// maxBodyBytes caps request bodies; blog payloads are tiny
const maxBodyBytes = 1 << 20

// ParseJSON decodes JSON from the request body into the given destination.
// Malformed bodies are reported as *domain.ValidationError.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	// Unknown fields are ignored: clients often send the whole blog back on update.
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return &domain.ValidationError{Message: "invalid request body"}
	}

	return nil
}
