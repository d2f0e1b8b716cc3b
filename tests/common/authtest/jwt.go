//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"lounge-pos/internal/pkg/clock"
	"lounge-pos/internal/pkg/config"
	"lounge-pos/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens against the same clock the app under test reads.
type JWTHelper struct {
	cfg   config.JWTConfig
	clock clock.Clock
}

func NewJWTHelper(cfg config.JWTConfig, clk clock.Clock) *JWTHelper {
	return &JWTHelper{cfg: cfg, clock: clk}
}

func (h *JWTHelper) GenerateToken(t *testing.T, operator string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, h.clock)
	token, err := service.GenerateToken(operator)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose lifetime ended an hour ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, operator string) string {
	t.Helper()
	past := clock.NewMockClock(h.clock.Now().Add(-h.cfg.Duration - time.Hour))
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, past)
	token, err := service.GenerateToken(operator)
	require.NoError(t, err)
	return token
}
