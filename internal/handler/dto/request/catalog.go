package request

import (
	"lounge-pos/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

// Prices accept either a JSON number or a decimal string.
type CreateDrinkRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock" binding:"gte=0"`
}

func (r CreateDrinkRequest) ToDomain() (*catalog.Drink, error) {
	return catalog.NewDrink(r.Name, r.Price, r.Stock)
}

type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

type UpdateDrinkPriceRequest struct {
	Price decimal.Decimal `json:"price"`
}
