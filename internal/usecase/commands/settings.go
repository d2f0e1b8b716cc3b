package commands

import (
	"context"
	"log/slog"

	reqdto "lounge-pos/internal/handler/dto/request"
	"lounge-pos/internal/pkg/money"
	"lounge-pos/internal/usecase/queries"
	"lounge-pos/internal/usecase/shared"
)

//go:generate mockgen -source=settings.go -destination=../../../tests/mock/commands/settings_mock.go -package=commandsmock

type SettingsCommands interface {
	UpdatePricing(ctx context.Context, req reqdto.UpdatePricingRequest) (queries.PricingView, error)
}

type settingsCommandsImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewSettingsCommands(uow shared.UnitOfWork, logger *slog.Logger) SettingsCommands {
	return &settingsCommandsImpl{uow: uow, logger: logger}
}

// UpdatePricing replaces the hourly rates. Running sessions are billed at the
// new rates from the next computation on.
func (c *settingsCommandsImpl) UpdatePricing(ctx context.Context, req reqdto.UpdatePricingRequest) (queries.PricingView, error) {
	var view queries.PricingView

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Settings().Get(ctx)
		if err != nil {
			return err
		}
		updated, err := req.ApplyTo(current)
		if err != nil {
			return markDomainErr(err)
		}
		if err := tx.Settings().Save(ctx, updated); err != nil {
			return err
		}
		view = queries.NewPricingView(updated)
		return nil
	})
	if err != nil {
		return queries.PricingView{}, err
	}

	c.logger.Info("pricing updated",
		"single", money.Display(view.SinglePrice),
		"multi", money.Display(view.MultiPrice),
		"room", money.Display(view.RoomPrice))
	return view, nil
}
