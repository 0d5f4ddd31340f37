package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	dob := NewDate(1990, time.January, 1)

	user, err := NewUser(" Ada ", "Lovelace", "ada@x.com", "+10000000000", dob, "hash")
	require.NoError(t, err)

	assert.Zero(t, user.ID, "ID is assigned by the directory")
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "Ada Lovelace", user.DisplayName())
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)

	tests := []struct {
		name    string
		first   string
		last    string
		email   string
		hash    string
		wantErr error
	}{
		{"missing email", "Ada", "Lovelace", "", "hash", ErrEmptyEmail},
		{"missing first name", "", "Lovelace", "ada@x.com", "hash", ErrEmptyFirstName},
		{"missing last name", "Ada", " ", "ada@x.com", "hash", ErrEmptyLastName},
		{"missing hash", "Ada", "Lovelace", "ada@x.com", "", ErrEmptyHashedPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewUser(tt.first, tt.last, tt.email, "+10000000000", dob, tt.hash)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserJSONExcludesHash(t *testing.T) {
	t.Parallel()

	user := &User{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com", HashedPassword: "secret-hash"}

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret-hash")
}

func TestUserClone(t *testing.T) {
	t.Parallel()

	original := &User{ID: 1, FirstName: "Ada"}
	clone := original.Clone()
	clone.FirstName = "Grace"

	assert.Equal(t, "Ada", original.FirstName)
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NormalizeEmail("A@x.com"), NormalizeEmail(" a@X.COM "))
}

func TestNewForecast(t *testing.T) {
	t.Parallel()

	f := NewForecast(NewDate(2025, time.January, 2), 25, "Warm")
	assert.Equal(t, 76, f.TemperatureF)

	f = NewForecast(NewDate(2025, time.January, 2), -20, "Freezing")
	assert.Equal(t, -3, f.TemperatureF)

	assert.Len(t, ForecastSummaries, 10)
}
