//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "lounge-pos/internal/handler/dto/request"
	"lounge-pos/internal/pkg/clock"
	"lounge-pos/internal/pkg/config"
	"lounge-pos/internal/pkg/errs"
	"lounge-pos/internal/pkg/jwt"
	"lounge-pos/internal/pkg/password"
	"lounge-pos/internal/usecase/commands"
	"lounge-pos/tests/common/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthCommands_Login(t *testing.T) {
	hash, err := password.HashPassword("lounge-admin", bcrypt.MinCost)
	require.NoError(t, err)

	admin := config.AdminConfig{Username: "admin", PasswordHash: hash}
	jwtService := jwt.NewService("test-secret", 2*time.Hour, clock.NewRealClock())
	cmds := commands.NewAuthCommands(admin, jwtService, storetest.DiscardLogger())
	ctx := context.Background()

	t.Run("success: issues a token for the operator", func(t *testing.T) {
		result, err := cmds.Login(ctx, reqdto.LoginRequest{Username: " admin ", Password: "lounge-admin"})
		require.NoError(t, err)
		assert.Equal(t, "admin", result.Operator)
		assert.Equal(t, 2*time.Hour, result.ExpiresIn)

		claims, err := jwtService.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Operator)
	})

	t.Run("error: wrong password or username look the same", func(t *testing.T) {
		cases := []reqdto.LoginRequest{
			{Username: "admin", Password: "wrong"},
			{Username: "cashier", Password: "lounge-admin"},
		}
		for _, req := range cases {
			result, err := cmds.Login(ctx, req)
			assert.Nil(t, result)
			assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
		}
	})
}
