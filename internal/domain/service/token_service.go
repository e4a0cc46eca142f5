package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a new signed access token for the given user.
	Generate(userID uuid.UUID) (string, error)

	// Validate checks a token's signature, structure and expiry and returns
	// its claims. Expired tokens fail with a cause matching
	// jwt.ErrTokenExpired so callers can log the distinction.
	Validate(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the fixed lifetime of issued tokens.
	AccessTokenDuration() time.Duration
}
