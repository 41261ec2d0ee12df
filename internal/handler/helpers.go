package handler

import (
	"net/http"

	"bloglist/internal/httputil"
)

// HealthCheck reports that the process is serving
// GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// UnknownEndpoint answers every request no route matched
func UnknownEndpoint(w http.ResponseWriter, r *http.Request) {
	httputil.RespondError(w, http.StatusNotFound, "unknown endpoint")
}
