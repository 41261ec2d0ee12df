package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"bloglist/internal/domain/services"
	"bloglist/internal/httputil"
)

const bearerScheme = "bearer"

// ExtractBearerToken returns the token from an "Authorization: Bearer <token>"
// header value. A missing header or any other scheme yields "".
func ExtractBearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return ""
	}
	return strings.TrimSpace(token)
}

// TokenExtractor stores the bearer token, if any, in the request context.
// It never rejects a request; routes that need an identity add UserExtractor.
func TokenExtractor() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := ExtractBearerToken(r.Header.Get("Authorization")); token != "" {
				r = httputil.WithToken(r, token)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserExtractor resolves the extracted token to a user and stores it in the
// request context. Requests without a usable identity are answered with 401.
func UserExtractor(resolver services.IdentityResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := resolver.Resolve(r.Context(), httputil.GetToken(r))
			if err != nil {
				httputil.RespondFailure(w, r, logger, err)
				return
			}

			next.ServeHTTP(w, httputil.WithUser(r, user))
		})
	}
}

// OptionalUser resolves the token when one was sent. Resolution failures are
// logged and the request continues anonymously.
func OptionalUser(resolver services.IdentityResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := httputil.GetToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				logger.Debug("ignoring unusable token", "error", err, "path", r.URL.Path)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, httputil.WithUser(r, user))
		})
	}
}
