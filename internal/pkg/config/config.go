package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"
	_ "time/tzdata" // lounge zone must resolve on minimal images

	"lounge-pos/internal/pkg/password"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets, admin credentials)
// - default: Values common across all environments (timezone, prices, tick, etc.)
// -----------------------------------------------------------------------------

const maxReservationTick = time.Minute

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Admin   AdminConfig
	Pricing PricingConfig
	Lounge  LoungeConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

// validate rejects origin lists the CORS middleware would refuse at startup.
func (c CORSConfig) validate() error {
	if len(c.AllowOrigins) == 0 {
		return errors.New("CORS_ALLOW_ORIGINS must list at least one origin")
	}
	for _, origin := range c.AllowOrigins {
		if strings.Contains(origin, "*") {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ALLOW_ORIGINS entry %q must start with http:// or https://", origin)
		}
	}
	return nil
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Africa/Cairo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// AdminConfig describes the single lounge operator account.
type AdminConfig struct {
	Username     string `envconfig:"ADMIN_USERNAME" default:"admin"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"` // bcrypt
}

// PricingConfig seeds the hourly rates; operators can change them at runtime.
type PricingConfig struct {
	Single decimal.Decimal `envconfig:"PRICE_SINGLE" default:"20"`
	Multi  decimal.Decimal `envconfig:"PRICE_MULTI" default:"30"`
	Room   decimal.Decimal `envconfig:"PRICE_ROOM" default:"50"`
}

type LoungeConfig struct {
	TimeZone          string        `envconfig:"LOUNGE_TIMEZONE" default:"Africa/Cairo"`
	ReservationTick   time.Duration `envconfig:"RESERVATION_TICK" default:"10s"`
	LowStockThreshold int           `envconfig:"LOW_STOCK_THRESHOLD" default:"10"`
	SeedDemoData      bool          `envconfig:"SEED_DEMO_DATA" default:"true"`
}

// Location resolves the lounge time zone used for reservation matching and
// daily reports.
func (c LoungeConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid LOUNGE_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c Config) Validate() error {
	prices := map[string]decimal.Decimal{
		"PRICE_SINGLE": c.Pricing.Single,
		"PRICE_MULTI":  c.Pricing.Multi,
		"PRICE_ROOM":   c.Pricing.Room,
	}
	for name, v := range prices {
		if !v.IsPositive() {
			return fmt.Errorf("%s must be positive, got %s", name, v.String())
		}
	}

	// a tick longer than a minute could skip a reservation's start minute
	if c.Lounge.ReservationTick <= 0 || c.Lounge.ReservationTick > maxReservationTick {
		return fmt.Errorf("RESERVATION_TICK must be in (0, %s], got %s", maxReservationTick, c.Lounge.ReservationTick)
	}
	if c.Lounge.LowStockThreshold < 0 {
		return fmt.Errorf("LOW_STOCK_THRESHOLD must not be negative, got %d", c.Lounge.LowStockThreshold)
	}
	if c.JWT.Duration <= 0 {
		return fmt.Errorf("JWT_DURATION must be positive, got %s", c.JWT.Duration)
	}
	if _, err := c.Lounge.Location(); err != nil {
		return err
	}
	if err := c.CORS.validate(); err != nil {
		return err
	}
	if err := password.ValidateHash(c.Admin.PasswordHash); err != nil {
		return fmt.Errorf("ADMIN_PASSWORD_HASH: %w", err)
	}
	return nil
}

func LoadConfig() (Config, error) {
	// .env is a local convenience; deployments set real environment variables
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Admin: AdminConfig{
			Username: "admin",
		},
		Pricing: PricingConfig{
			Single: decimal.NewFromInt(20),
			Multi:  decimal.NewFromInt(30),
			Room:   decimal.NewFromInt(50),
		},
		Lounge: LoungeConfig{
			TimeZone:          "UTC",
			ReservationTick:   10 * time.Second,
			LowStockThreshold: 10,
			SeedDemoData:      false,
		},
	}
}
