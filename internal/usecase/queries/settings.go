package queries

import (
	"context"

	"lounge-pos/internal/pkg/errs"
	"lounge-pos/internal/usecase/shared"
)

//go:generate mockgen -source=settings.go -destination=../../../tests/mock/queries/settings_mock.go -package=queriesmock

type SettingsQueries interface {
	GetPricing(ctx context.Context) (PricingView, error)
}

type settingsQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewSettingsQueries(uow shared.UnitOfWork) SettingsQueries {
	return &settingsQueriesImpl{uow: uow}
}

func (q *settingsQueriesImpl) GetPricing(ctx context.Context) (PricingView, error) {
	var view PricingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Settings().Get(ctx)
		if err != nil {
			return err
		}
		view = NewPricingView(s)
		return nil
	})
	if err != nil {
		return PricingView{}, errs.Wrap(err, "get pricing")
	}
	return view, nil
}
