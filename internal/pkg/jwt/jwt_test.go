//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"lounge-pos/internal/pkg/clock"
	"lounge-pos/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC))
	svc := jwt.NewService("secret", time.Hour, clk)

	token, err := svc.GenerateToken("admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Operator)
}

func TestValidateToken_Expired(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC))
	svc := jwt.NewService("secret", time.Hour, clk)

	token, err := svc.GenerateToken("admin")
	require.NoError(t, err)

	clk.Add(2 * time.Hour)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC))
	token, err := jwt.NewService("secret", time.Hour, clk).GenerateToken("admin")
	require.NoError(t, err)

	_, err = jwt.NewService("other", time.Hour, clk).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = jwt.NewService("secret", time.Hour, clk).ValidateToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
