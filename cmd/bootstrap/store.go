package bootstrap

import (
	"context"
	"log/slog"

	"lounge-pos/internal/domain/pricing"
	"lounge-pos/internal/infra/memstore"
	"lounge-pos/internal/pkg/config"
	"lounge-pos/internal/pkg/errs"
	"lounge-pos/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
		func(s *memstore.Store) shared.UnitOfWork { return s },
	),
)

// NewStore builds the lounge state from the configured rates. Demo data is
// seeded on start, before the scheduler begins ticking.
func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*memstore.Store, error) {
	settings, err := pricing.NewSettings(cfg.Pricing.Single, cfg.Pricing.Multi, cfg.Pricing.Room)
	if err != nil {
		return nil, errs.Wrap(err, "initial pricing")
	}

	store := memstore.NewStore(settings, logger)

	if cfg.Lounge.SeedDemoData {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return memstore.Seed(ctx, store)
			},
		})
	}

	return store, nil
}
