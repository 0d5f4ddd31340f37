package api

import (
	"time"

	"github.com/phrazzld/fluentfox-api/internal/domain"
)

// UserResponse is the public profile of a user. It never carries the
// password hash.
type UserResponse struct {
	ID          int         `json:"id"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email"`
	PhoneNumber string      `json:"phoneNumber"`
	DateOfBirth domain.Date `json:"dateOfBirth"`
}

// LoginResponse is the payload of a successful login.
type LoginResponse struct {
	Token   string       `json:"token"`
	Expires time.Time    `json:"expires"`
	User    UserResponse `json:"user"`
}

// ConfigInfoResponse describes the running API.
type ConfigInfoResponse struct {
	APIName       string    `json:"apiName"`
	Version       string    `json:"version"`
	Environment   string    `json:"environment"`
	ServerTime    time.Time `json:"serverTime"`
	MachineName   string    `json:"machineName"`
	CORSEnabled   bool      `json:"corsEnabled"`
	JWTConfigured bool      `json:"jwtConfigured"`
}

// JWTStatusResponse reports token settings without the signing key.
type JWTStatusResponse struct {
	IsValid       bool   `json:"isValid"`
	Issuer        string `json:"issuer"`
	Audience      string `json:"audience"`
	ExpireMinutes int    `json:"expireMinutes"`
	KeyConfigured bool   `json:"keyConfigured"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		DateOfBirth: user.DateOfBirth,
	}
}

func usersToResponse(users []*domain.User) []UserResponse {
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, userToResponse(u))
	}
	return resp
}
