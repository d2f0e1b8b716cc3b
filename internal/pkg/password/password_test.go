//go:build unit

package password_test

import (
	"testing"

	"lounge-pos/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("lounge-admin", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, password.ComparePassword(hash, "lounge-admin"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword(hash, ""), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.ComparePassword("", "lounge-admin"), password.ErrInvalidPassword)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := password.HashPassword("", bcrypt.MinCost)
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestValidateHash(t *testing.T) {
	hash, err := password.HashPassword("lounge-admin", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, password.ValidateHash(hash))
	assert.ErrorIs(t, password.ValidateHash("lounge-admin"), password.ErrMalformedHash)
	assert.ErrorIs(t, password.ValidateHash(""), password.ErrMalformedHash)
}
