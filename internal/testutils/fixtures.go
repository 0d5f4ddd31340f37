package testutils

import (
	"github.com/phrazzld/fluentfox-api/internal/config"
	"github.com/phrazzld/fluentfox-api/internal/domain"
)

// TestJWTKey is a test-only signing key. It must never be used outside tests.
const TestJWTKey = "test-signing-key-that-is-at-least-32-bytes"

// JWTConfig returns a valid token configuration for tests.
func JWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Key:           TestJWTKey,
		Issuer:        "FluentFoxApi",
		Audience:      "FluentFoxClient",
		ExpireMinutes: 60,
	}
}

// AdaRegistration returns a registration that passes every rule.
func AdaRegistration() domain.RegisterRequest {
	return domain.RegisterRequest{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@x.com",
		PhoneNumber:     "+10000000000",
		DateOfBirth:     "1990-01-01",
		Password:        "Str0ng!Pass",
		ConfirmPassword: "Str0ng!Pass",
	}
}
