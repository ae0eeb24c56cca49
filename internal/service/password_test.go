package service

import (
	"testing"

	"github.com/bagdasarian/taskflow/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLegacyChecksum(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{name: "empty", password: "", want: "hashed_0"},
		{name: "single char", password: "a", want: "hashed_61"},
		{name: "two chars", password: "ab", want: "hashed_c21"},
		{name: "overflows int32", password: "password123", want: "hashed_53ab39b7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LegacyChecksum{}.Hash(tt.password)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, LegacyChecksum{}.Verify(got, tt.password))
		})
	}

	assert.False(t, LegacyChecksum{}.Verify("hashed_61", "b"))
}

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}

	digest, err := h.Hash("secret1")

	require.NoError(t, err)
	assert.NotEqual(t, "secret1", digest)
	assert.True(t, h.Verify(digest, "secret1"))
	assert.False(t, h.Verify(digest, "secret2"))
	assert.False(t, h.Verify("not-a-digest", "secret1"))
}

func TestNewPasswordHasher(t *testing.T) {
	h, err := NewPasswordHasher(config.HasherLegacy, 0)
	require.NoError(t, err)
	assert.IsType(t, LegacyChecksum{}, h)

	h, err = NewPasswordHasher(config.HasherBcrypt, 4)
	require.NoError(t, err)
	assert.Equal(t, BcryptHasher{Cost: 4}, h)

	_, err = NewPasswordHasher("md5", 0)
	assert.Error(t, err)
}
