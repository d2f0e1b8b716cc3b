package bootstrap

import (
	"context"
	"log/slog"

	"lounge-pos/internal/pkg/clock"
	"lounge-pos/internal/pkg/config"
	"lounge-pos/internal/usecase/scheduler"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		scheduler.NewAutoStarter,
		NewRunner,
	),
	fx.Invoke(registerRunner),
)

func NewRunner(starter *scheduler.AutoStarter, clk clock.Clock, cfg config.Config, logger *slog.Logger) *scheduler.Runner {
	return scheduler.NewRunner(starter, clk, cfg.Lounge.ReservationTick, logger)
}

func registerRunner(lc fx.Lifecycle, runner *scheduler.Runner) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			runner.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return runner.Stop(ctx)
		},
	})
}
