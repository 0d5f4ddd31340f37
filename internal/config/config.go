package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	JWT    JWTConfig    `mapstructure:"jwt"    validate:"required"`
	CORS   CORSConfig   `mapstructure:"cors"`
	Auth   AuthConfig   `mapstructure:"auth"   validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int    `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	Environment     string `mapstructure:"environment"      validate:"required"`
	ShutdownTimeout int    `mapstructure:"shutdown_seconds" validate:"gte=0"`
}

// ShutdownTimeoutDuration returns the graceful shutdown window.
func (s ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(s.ShutdownTimeout) * time.Second
}

// JWTConfig contains the token signing settings. A service refuses to start
// unless the key, issuer and audience are present and the lifetime is positive.
type JWTConfig struct {
	Key           string `mapstructure:"key"            validate:"required,min=32"`
	Issuer        string `mapstructure:"issuer"         validate:"required"`
	Audience      string `mapstructure:"audience"       validate:"required"`
	ExpireMinutes int    `mapstructure:"expire_minutes" validate:"gt=0"`
}

// IsValid reports whether every token setting is usable.
func (j JWTConfig) IsValid() bool {
	return j.Key != "" && j.Issuer != "" && j.Audience != "" && j.ExpireMinutes > 0
}

// TokenLifetime returns the configured token lifetime.
func (j JWTConfig) TokenLifetime() time.Duration {
	return time.Duration(j.ExpireMinutes) * time.Minute
}

// CORSConfig describes the cross-origin policy. An empty origin list allows
// any origin; "*" in headers or methods allows any.
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"   json:"allowedOrigins"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"   json:"allowedHeaders"`
	AllowedMethods   []string `mapstructure:"allowed_methods"   json:"allowedMethods"`
	AllowCredentials bool     `mapstructure:"allow_credentials" json:"allowCredentials"`
}

// AuthConfig contains password hashing settings.
type AuthConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"gte=10,lte=31"`
}
