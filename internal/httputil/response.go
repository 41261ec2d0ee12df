package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"bloglist/internal/domain"
)

// ErrorBody is the shape of every error response
type ErrorBody struct {
	Error string `json:"error"`
}

// RespondJSON writes a JSON response with the given status code.
// It marshals first so an encoding failure never leaves a partial response.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondError writes {"error": message} with the given status code
func RespondError(w http.ResponseWriter, status int, message string) {
	payload, err := json.Marshal(ErrorBody{Error: message})
	if err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondFailure is the single exit point for failed requests. Classified
// failures get their stable status and message; anything else is logged and
// answered with a generic 500 so internal details never reach the client.
func RespondFailure(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	c, ok := domain.Classify(err)
	if !ok {
		logger.Error("unhandled error",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
		)
		RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	logger.Debug("request failed",
		"status", c.Status,
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
	)

	if c.Message == "" {
		w.WriteHeader(c.Status)
		return
	}
	RespondError(w, c.Status, c.Message)
}
