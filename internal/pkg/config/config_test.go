//go:build unit

package config

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func adminHash(t *testing.T) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("lounge-admin"), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_PASSWORD_HASH", adminHash(t))
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, 12*time.Hour, cfg.JWT.Duration)
	assert.True(t, cfg.Pricing.Single.Equal(decimal.NewFromInt(20)))
	assert.True(t, cfg.Pricing.Multi.Equal(decimal.NewFromInt(30)))
	assert.True(t, cfg.Pricing.Room.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "Africa/Cairo", cfg.Lounge.TimeZone)
	assert.Equal(t, 10*time.Second, cfg.Lounge.ReservationTick)
	assert.Equal(t, 10, cfg.Lounge.LowStockThreshold)
	assert.True(t, cfg.Lounge.SeedDemoData)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "zero single price", key: "PRICE_SINGLE", val: "0"},
		{name: "negative room price", key: "PRICE_ROOM", val: "-5"},
		{name: "tick too long", key: "RESERVATION_TICK", val: "2m"},
		{name: "zero tick", key: "RESERVATION_TICK", val: "0s"},
		{name: "unknown timezone", key: "LOUNGE_TIMEZONE", val: "Mars/Olympus"},
		{name: "negative threshold", key: "LOW_STOCK_THRESHOLD", val: "-1"},
		{name: "plain-text admin password", key: "ADMIN_PASSWORD_HASH", val: "lounge-admin"},
		{name: "no cors origins", key: "CORS_ALLOW_ORIGINS", val: ""},
		{name: "cors origin without scheme", key: "CORS_ALLOW_ORIGINS", val: "localhost:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.val)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigRequiresSecrets(t *testing.T) {
	t.Setenv("PORT", "8080")
	// register for restore, then remove so envconfig sees them as missing
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	require.NoError(t, os.Unsetenv("ADMIN_PASSWORD_HASH"))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestNewTestConfigIsValid(t *testing.T) {
	cfg := NewTestConfig()
	cfg.Admin.PasswordHash = adminHash(t)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowOrigins)
	assert.NotEmpty(t, cfg.CORS.AllowMethods)
}
