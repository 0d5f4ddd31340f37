package domain

import (
	"errors"
	"strings"
	"time"
)

// Common user validation errors
var (
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyFirstName      = errors.New("first name cannot be empty")
	ErrEmptyLastName       = errors.New("last name cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered user of the FluentFox API.
// The password hash never leaves the process: it is excluded from JSON and
// from every response type.
type User struct {
	ID             int       `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phoneNumber"`
	DateOfBirth    Date      `json:"dateOfBirth"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewUser creates a User from profile fields and an already hashed password.
// The ID is left at zero; the user directory assigns it on insert.
func NewUser(
	firstName, lastName, email, phoneNumber string,
	dateOfBirth Date,
	hashedPassword string,
) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		FirstName:      strings.TrimSpace(firstName),
		LastName:       strings.TrimSpace(lastName),
		Email:          strings.TrimSpace(email),
		PhoneNumber:    strings.TrimSpace(phoneNumber),
		DateOfBirth:    dateOfBirth,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the invariants a stored user must satisfy. Field format
// rules live in the request validator; this only guards against records
// that could never have passed it.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if u.FirstName == "" {
		return ErrEmptyFirstName
	}
	if u.LastName == "" {
		return ErrEmptyLastName
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}

// DisplayName returns "First Last".
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

// Clone returns a copy of the user that shares no mutable state with u.
func (u *User) Clone() *User {
	c := *u
	return &c
}

// NormalizeEmail returns the key under which emails are compared.
// Emails are unique case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
