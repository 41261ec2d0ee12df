package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bloglist/internal/domain"
	"bloglist/internal/domain/models"
	"bloglist/internal/httputil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubResolver accepts a single token
type stubResolver struct {
	token string
	user  *models.User
}

func (s *stubResolver) Resolve(_ context.Context, token string) (*models.User, error) {
	switch token {
	case "":
		return nil, domain.Unauthorized(domain.MsgTokenMissing, nil)
	case s.token:
		return s.user, nil
	default:
		return nil, domain.Unauthorized(domain.MsgTokenInvalid, domain.ErrTokenInvalid)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi"},
		{"bearer abc", "abc"},
		{"  Bearer   abc  ", "abc"},
		{"", ""},
		{"Bearer", ""},
		{"Basic dXNlcjpwYXNz", ""},
		{"abc.def.ghi", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractBearerToken(tt.header), "header %q", tt.header)
	}
}

func TestTokenExtractor(t *testing.T) {
	var got string
	h := TokenExtractor()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = httputil.GetToken(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
	req.Header.Set("Authorization", "Bearer tok")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "tok", got)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/blogs", nil))
	assert.Empty(t, got)
}

func TestUserExtractor(t *testing.T) {
	user := &models.User{ID: "u1", Username: "root"}
	resolver := &stubResolver{token: "good", user: user}

	var seen *models.User
	h := TokenExtractor()(UserExtractor(resolver, discardLogger())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = httputil.GetUser(r)
			w.WriteHeader(http.StatusNoContent)
		}),
	))

	t.Run("resolved", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/blogs", nil)
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, user, seen)
	})

	for _, tc := range []struct {
		name    string
		header  string
		message string
	}{
		{"missing", "", domain.MsgTokenMissing},
		{"wrong scheme", "Basic good", domain.MsgTokenMissing},
		{"invalid", "Bearer bad", domain.MsgTokenInvalid},
	} {
		t.Run(tc.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodPost, "/api/blogs", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, seen)

			var body httputil.ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.message, body.Error)
		})
	}
}

func TestRecovery(t *testing.T) {
	h := Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	h := RequestLogger(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}

func TestOptionalUser(t *testing.T) {
	user := &models.User{ID: "u1"}
	resolver := &stubResolver{token: "good", user: user}

	var seen *models.User
	h := TokenExtractor()(OptionalUser(resolver, discardLogger())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = httputil.GetUser(r)
		}),
	))

	for _, tc := range []struct {
		header string
		want   *models.User
	}{
		{"Bearer good", user},
		{"Bearer bad", nil},
		{"", nil},
	} {
		seen = nil
		req := httptest.NewRequest(http.MethodPut, "/api/blogs/1", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, tc.want, seen, "header %q", tc.header)
	}
}
