package commands

import (
	"context"
	"log/slog"

	"lounge-pos/internal/domain/catalog"
	reqdto "lounge-pos/internal/handler/dto/request"
	"lounge-pos/internal/pkg/errs"
	"lounge-pos/internal/usecase/queries"
	"lounge-pos/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog_mock.go -package=commandsmock

type CatalogCommands interface {
	CreateDrink(ctx context.Context, req reqdto.CreateDrinkRequest) (*queries.DrinkView, error)
	RemoveDrink(ctx context.Context, id uuid.UUID) error
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*queries.DrinkView, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) (*queries.DrinkView, error)
}

type catalogCommandsImpl struct {
	uow    shared.UnitOfWork
	lounge shared.Lounge
	logger *slog.Logger
}

func NewCatalogCommands(uow shared.UnitOfWork, lounge shared.Lounge, logger *slog.Logger) CatalogCommands {
	return &catalogCommandsImpl{
		uow:    uow,
		lounge: lounge,
		logger: logger,
	}
}

func (c *catalogCommandsImpl) CreateDrink(ctx context.Context, req reqdto.CreateDrinkRequest) (*queries.DrinkView, error) {
	drink, err := req.ToDomain()
	if err != nil {
		return nil, markDomainErr(err)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Drinks().Create(ctx, drink)
	})
	if err != nil {
		return nil, errs.Wrap(err, "create drink")
	}

	view := queries.NewDrinkView(drink, c.lounge.LowStockThreshold)
	return &view, nil
}

// RemoveDrink takes the drink off the menu. Lines already on open baskets
// keep their captured name and price.
func (c *catalogCommandsImpl) RemoveDrink(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Drinks().Delete(ctx, id); err != nil {
			return markNotFound(err, ErrDrinkNotFound)
		}
		return nil
	})
}

// AdjustStock applies a restock (positive) or write-off (negative). Stock
// never drops below zero.
func (c *catalogCommandsImpl) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*queries.DrinkView, error) {
	view, err := c.updateDrink(ctx, id, func(drink *catalog.Drink) error {
		drink.AdjustStock(delta)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("stock adjusted", "drink_id", id, "delta", delta, "stock", view.Stock)
	if view.LowStock {
		c.logger.Warn("drink stock is low", "drink_id", id, "stock", view.Stock)
	}
	return view, nil
}

// UpdatePrice only affects future sales; open baskets keep the price they
// captured.
func (c *catalogCommandsImpl) UpdatePrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) (*queries.DrinkView, error) {
	return c.updateDrink(ctx, id, func(drink *catalog.Drink) error {
		return markDomainErr(drink.UpdatePrice(price))
	})
}

func (c *catalogCommandsImpl) updateDrink(ctx context.Context, id uuid.UUID, apply func(drink *catalog.Drink) error) (*queries.DrinkView, error) {
	var view queries.DrinkView

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		drink, err := tx.Drinks().FindByID(ctx, id)
		if err != nil {
			return markNotFound(err, ErrDrinkNotFound)
		}
		if err := apply(drink); err != nil {
			return err
		}
		if err := tx.Drinks().Save(ctx, drink); err != nil {
			return err
		}
		view = queries.NewDrinkView(drink, c.lounge.LowStockThreshold)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}
