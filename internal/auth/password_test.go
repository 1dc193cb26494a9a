package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secreto123", hash)

	// Same input must not produce the same hash (random salt).
	hash2, err := HashPassword("secreto123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("secreto123", hash))
	assert.False(t, CheckPasswordHash("otra-cosa", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "secreto123", false},
		{"exactly minimum", "123456", false},
		{"too short", "12345", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
