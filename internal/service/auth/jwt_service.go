package auth

import (
	"context"
	"time"

	"github.com/phrazzld/fluentfox-api/internal/domain"
)

// JWTService defines operations for managing JWT session tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT containing the user's identity claims.
	// Returns the token string and its expiry time, or an error if signing fails.
	GenerateToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// It fails closed: every failure (bad signature, wrong issuer or audience,
	// expiry, malformed input) yields ErrInvalidToken or ErrExpiredToken and
	// nil claims.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the identity carried by a validated token.
type Claims struct {
	// UserID is the numeric identifier of the user the token was issued for.
	UserID int `json:"uid"`

	// Name is the user's display name ("First Last").
	Name      string `json:"name"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Standard registered JWT claims
	Subject   string    `json:"sub"`
	Issuer    string    `json:"iss"`
	Audience  []string  `json:"aud"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
	ID        string    `json:"jti"`
}
