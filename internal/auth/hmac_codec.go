package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bloglist/internal/domain"
	"bloglist/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

// HMACCodec implements TokenCodec with HS256 and a server-held secret.
type HMACCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// NewHMACCodec creates a codec signing with secret. The secret is copied and
// never modified afterwards.
func NewHMACCodec(secret string, ttl time.Duration, logger *slog.Logger) (*HMACCodec, error) {
	if secret == "" {
		return nil, errors.New("token secret cannot be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	return &HMACCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}, nil
}

// Issue signs a token for the user that expires after the configured TTL
func (c *HMACCodec) Issue(user *models.User) (string, error) {
	now := c.now()
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		ID:       user.ID,
		Username: user.Username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify parses the token and checks its signature and expiry.
// Subject presence is left to the caller.
func (c *HMACCodec) Verify(tokenString string) (*models.TokenClaims, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			c.logger.Debug("token expired")
			return nil, domain.ErrTokenExpired
		}
		c.logger.Debug("token parse failed", "error", err.Error())
		return nil, domain.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	return claims, nil
}
