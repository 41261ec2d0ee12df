package httputil

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bloglist/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRespondFailure(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"malformed id", fmt.Errorf("get: %w", domain.ErrMalformedID), http.StatusBadRequest, `{"error":"malformatted id"}`},
		{"token missing", domain.Unauthorized(domain.MsgTokenMissing, nil), http.StatusUnauthorized, `{"error":"token missing"}`},
		{"forbidden", &domain.ForbiddenError{Message: domain.MsgDeleteForbidden}, http.StatusForbidden, `{"error":"only the creator can delete this resource"}`},
		{"not found has empty body", domain.ErrNotFound, http.StatusNotFound, ``},
		{"unclassified is masked", errors.New("pq: relation blogs does not exist"), http.StatusInternalServerError, `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/blogs/1", nil)

			RespondFailure(w, r, logger, tt.err)

			assert.Equal(t, tt.status, w.Code)
			if tt.body == "" {
				assert.Empty(t, w.Body.String())
			} else {
				assert.JSONEq(t, tt.body, w.Body.String())
				assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			}
		})
	}
}

func TestRespondFailure_LogsUnclassified(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	RespondFailure(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/blogs", nil), logger, errors.New("boom"))

	assert.Contains(t, logs.String(), "unhandled error")
	assert.Contains(t, logs.String(), "boom")
}
