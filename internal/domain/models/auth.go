package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims represents the identity token payload.
// It carries no scope beyond "this is user ID".
type TokenClaims struct {
	jwt.RegisteredClaims        // sub, iat, exp
	ID                   string `json:"id"`
	Username             string `json:"username"`
}

// GetUserID returns the subject user ID
func (c *TokenClaims) GetUserID() string {
	return c.ID
}
