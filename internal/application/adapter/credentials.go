// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PasswordService hashes and checks user passwords.
type PasswordService interface {
	HashPassword(password string) (string, error)
	// VerifyPassword returns an error when password does not match hashedPassword.
	VerifyPassword(hashedPassword, password string) error
	ValidatePasswordStrength(password string) error
}

// AccessToken is a signed bearer token and its expiry.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenClaims identifies the owner a request acts for.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService issues and validates access tokens. There are no refresh
// tokens; clients log in again once a token expires.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, userID uuid.UUID, email string) (*AccessToken, error)
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
