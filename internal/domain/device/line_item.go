package device

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one drink in an open basket. unitPrice is the catalog price at
// the moment the drink was first added; later catalog changes do not reach it.
type LineItem struct {
	drinkID   uuid.UUID
	name      string
	unitPrice decimal.Decimal
	quantity  int
}

func (l LineItem) DrinkID() uuid.UUID         { return l.drinkID }
func (l LineItem) Name() string               { return l.name }
func (l LineItem) UnitPrice() decimal.Decimal { return l.unitPrice }
func (l LineItem) Quantity() int              { return l.quantity }

func (l LineItem) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}
