package auth

import (
	"errors"
	"fmt"
)

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token is malformed, carries a bad
	// signature, or names the wrong issuer or audience.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired. It wraps
	// ErrInvalidToken so callers that only care about validity can ignore it.
	ErrExpiredToken = fmt.Errorf("%w: token has expired", ErrInvalidToken)

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = fmt.Errorf("%w: token is missing", ErrInvalidToken)

	// ErrInvalidConfig indicates the token service was configured without a
	// signing key, issuer, audience or positive lifetime.
	ErrInvalidConfig = errors.New("invalid token configuration")

	// ErrEmptyPassword indicates an attempt to hash an empty password.
	ErrEmptyPassword = errors.New("password cannot be empty")
)
