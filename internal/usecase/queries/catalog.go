package queries

import (
	"context"
	"strings"

	"lounge-pos/internal/pkg/errs"
	"lounge-pos/internal/usecase/shared"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog_mock.go -package=queriesmock

type DrinkFilters struct {
	Search       string
	LowStockOnly bool
}

type CatalogQueries interface {
	ListDrinks(ctx context.Context, filters DrinkFilters) ([]DrinkView, error)
}

type catalogQueriesImpl struct {
	uow    shared.UnitOfWork
	lounge shared.Lounge
}

func NewCatalogQueries(uow shared.UnitOfWork, lounge shared.Lounge) CatalogQueries {
	return &catalogQueriesImpl{uow: uow, lounge: lounge}
}

func (q *catalogQueriesImpl) ListDrinks(ctx context.Context, filters DrinkFilters) ([]DrinkView, error) {
	search := strings.TrimSpace(filters.Search)
	views := []DrinkView{}

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		drinks, err := tx.Drinks().List(ctx)
		if err != nil {
			return err
		}
		for _, d := range drinks {
			if search != "" && !d.MatchesName(search) {
				continue
			}
			v := NewDrinkView(d, q.lounge.LowStockThreshold)
			if filters.LowStockOnly && !v.LowStock {
				continue
			}
			views = append(views, v)
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "list drinks")
	}
	return views, nil
}
