package mocks

import (
	"errors"
	"strings"
	"sync"
)

const mockHashPrefix = "mock-hash:"

// MockPasswordHasher implements auth.PasswordHasher for testing. By default
// Hash prefixes the password and Verify checks that prefix, so round trips
// work without bcrypt's cost.
type MockPasswordHasher struct {
	// HashFn allows for custom hashing logic in tests
	HashFn func(password string) (string, error)

	// VerifyFn allows for custom verification logic in tests
	VerifyFn func(password, hashedPassword string) bool

	mu sync.Mutex

	// HashCallCount tracks how many times Hash was called
	HashCallCount int

	// VerifyCallCount tracks how many times Verify was called
	VerifyCallCount int
}

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.mu.Lock()
	m.HashCallCount++
	m.mu.Unlock()

	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	return mockHashPrefix + password, nil
}

// Verify implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Verify(password, hashedPassword string) bool {
	m.mu.Lock()
	m.VerifyCallCount++
	m.mu.Unlock()

	if m.VerifyFn != nil {
		return m.VerifyFn(password, hashedPassword)
	}
	stored, ok := strings.CutPrefix(hashedPassword, mockHashPrefix)
	return ok && password != "" && stored == password
}
