package auth

import "bloglist/internal/domain/models"

// TokenCodec issues and verifies identity tokens.
// This abstraction keeps the resolver and login flow agnostic of the token format.
type TokenCodec interface {
	// Issue signs a time-bounded token for the user
	Issue(user *models.User) (string, error)

	// Verify checks signature and expiry and returns the parsed claims.
	// Returns domain.ErrTokenExpired past the expiry, domain.ErrTokenInvalid otherwise.
	Verify(tokenString string) (*models.TokenClaims, error)
}
