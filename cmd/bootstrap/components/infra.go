package components

import (
	"lounge-pos/internal/infra/export"
	"lounge-pos/internal/pkg/config"
	"lounge-pos/internal/usecase/queries"
	"lounge-pos/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewLounge,
		fx.Annotate(
			export.NewXLSXExporter,
			fx.As(new(queries.HistoryExporter)),
		),
	),
)

func NewLounge(cfg config.Config) (shared.Lounge, error) {
	loc, err := cfg.Lounge.Location()
	if err != nil {
		return shared.Lounge{}, err
	}
	return shared.Lounge{
		Location:          loc,
		LowStockThreshold: cfg.Lounge.LowStockThreshold,
	}, nil
}
