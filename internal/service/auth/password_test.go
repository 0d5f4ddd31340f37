package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasherCost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 12, NewBcryptHasher(12).Cost())
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).Cost())
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).Cost())
}

func TestBcryptHasherRoundTrip(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	passwords := []string{
		"Str0ng!Pass",
		"test@#$%^&*()",
		"тест123Пароль!",
		"a",
	}

	for _, password := range passwords {
		t.Run(password, func(t *testing.T) {
			t.Parallel()

			first, err := hasher.Hash(password)
			require.NoError(t, err)
			second, err := hasher.Hash(password)
			require.NoError(t, err)

			assert.NotEqual(t, first, second, "random salt makes hashes differ")
			assert.NotContains(t, first, password)
			assert.True(t, hasher.Verify(password, first))
			assert.True(t, hasher.Verify(password, second))
			assert.False(t, hasher.Verify(password+"x", first))
		})
	}
}

func TestBcryptHasherUsesConfiguredCost(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("Str0ng!Pass")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasherRejectsEmptyPassword(t *testing.T) {
	t.Parallel()

	hash, err := NewBcryptHasher(bcrypt.MinCost).Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
	assert.Empty(t, hash)
}

func TestBcryptHasherVerifyNeverFailsLoudly(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)
	other, err := hasher.Hash("0ther!Pass")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
	}{
		{"wrong password", "Str0ng!Pass", other},
		{"malformed hash", "Str0ng!Pass", "not-a-bcrypt-hash"},
		{"foreign algorithm", "Str0ng!Pass", "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
		{"empty hash", "Str0ng!Pass", ""},
		{"empty password", "", other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.NotPanics(t, func() {
				assert.False(t, hasher.Verify(tt.password, tt.hash))
			})
		})
	}
}
