//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"lounge-pos/cmd/bootstrap"
	"lounge-pos/cmd/bootstrap/components"
	"lounge-pos/internal/pkg/clock"
	"lounge-pos/internal/pkg/config"
	"lounge-pos/internal/pkg/password"
	"lounge-pos/internal/usecase/scheduler"
	"lounge-pos/tests/common/authtest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

const (
	OperatorName     = "admin"
	OperatorPassword = "password123"

	// SessionTokenTTL outlasts the longest session any suite plays.
	SessionTokenTTL = 12 * time.Hour
)

// OpeningTime is where every suite's clock starts: 2025-03-01 18:00 in the lounge zone (UTC).
var OpeningTime = time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

// ------------------------------------------------------------
// app wiring
// ------------------------------------------------------------
type e2eApp struct {
	router  *gin.Engine
	cfg     config.Config
	clock   *clock.MockClock
	starter *scheduler.AutoStarter
	app     *fx.App
}

func buildE2EApp(t *testing.T) e2eApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := createTestConfig(t)
	clk := clock.NewMockClock(OpeningTime)

	var (
		router  *gin.Engine
		starter *scheduler.AutoStarter
	)

	app := fx.New(
		fx.Provide(func() config.Config { return cfg }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.StoreModule,
		bootstrap.JWTModule,
		components.InfraModule,
		components.UseCaseModule,
		bootstrap.SchedulerModule,
		components.HandlerModule,

		// every component reads the suite's clock
		fx.Decorate(func(clock.Clock) clock.Clock { return clk }),

		fx.Populate(&router, &starter),
		fx.NopLogger,
	)

	require.NoError(t, app.Err(), "failed to build fx graph")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")

	return e2eApp{router: router, cfg: cfg, clock: clk, starter: starter, app: app}
}

func createTestConfig(t *testing.T) config.Config {
	t.Helper()
	hash, err := password.HashPassword(OperatorPassword, bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.NewTestConfig()
	cfg.Admin = config.AdminConfig{Username: OperatorName, PasswordHash: hash}
	// the runner must not fire on its own while a test drives Tick
	cfg.Lounge.ReservationTick = time.Hour
	// tests advance the clock by whole hours of play on one token
	cfg.JWT.Duration = SessionTokenTTL
	return cfg
}

// ------------------------------------------------------------
// shared suite
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Config  config.Config
	Clock   *clock.MockClock
	Starter *scheduler.AutoStarter
	JWT     *authtest.JWTHelper

	app *fx.App
}

func (s *SharedSuite) SetupTest() {
	built := buildE2EApp(s.T())
	s.Router = built.router
	s.Config = built.cfg
	s.Clock = built.clock
	s.Starter = built.starter
	s.JWT = authtest.NewJWTHelper(built.cfg.JWT, built.clock)
	s.app = built.app
}

func (s *SharedSuite) TearDownTest() {
	if s.app == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.app.Stop(ctx); err != nil {
		slog.Warn("failed to stop fx app", "error", err.Error())
	}
}

// Login returns a session cookie for the lounge operator.
func (s *SharedSuite) Login() *http.Cookie {
	return authtest.LoginOperator(s.T(), s.Router, OperatorName, OperatorPassword)
}
