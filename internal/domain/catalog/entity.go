package catalog

import (
	"errors"
	"strings"

	"lounge-pos/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyDrinkName   = errors.New("drink name cannot be empty")
	ErrDrinkNameTooLong = errors.New("drink name is too long (max 100 characters)")
	ErrInvalidPrice     = errors.New("drink price must be positive")
	ErrNegativeStock    = errors.New("stock cannot be negative")
	ErrOutOfStock       = errors.New("drink is out of stock")
)

const (
	MaxDrinkNameLength       = 100
	DefaultLowStockThreshold = 10
)

type Drink struct {
	id    uuid.UUID
	name  string
	price decimal.Decimal
	stock int
}

func NewDrink(name string, price decimal.Decimal, stock int) (*Drink, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyDrinkName
	}
	if len([]rune(name)) > MaxDrinkNameLength {
		return nil, ErrDrinkNameTooLong
	}
	if err := money.RequirePositive(price); err != nil {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}

	return &Drink{
		id:    uuid.New(),
		name:  name,
		price: price,
		stock: stock,
	}, nil
}

func (d *Drink) ID() uuid.UUID          { return d.id }
func (d *Drink) Name() string           { return d.name }
func (d *Drink) Price() decimal.Decimal { return d.price }
func (d *Drink) Stock() int             { return d.stock }

func (d *Drink) Clone() *Drink {
	c := *d
	return &c
}

// Take removes exactly one unit for a basket. It refuses at zero stock.
func (d *Drink) Take() error {
	if d.stock <= 0 {
		return ErrOutOfStock
	}
	d.stock--
	return nil
}

// AdjustStock applies a restock (positive) or write-off (negative). The
// result never drops below zero.
func (d *Drink) AdjustStock(delta int) {
	d.stock = max(0, d.stock+delta)
}

func (d *Drink) UpdatePrice(price decimal.Decimal) error {
	if err := money.RequirePositive(price); err != nil {
		return ErrInvalidPrice
	}
	d.price = price
	return nil
}

func (d *Drink) IsLowStock(threshold int) bool {
	return d.stock < threshold
}

func (d *Drink) MatchesName(term string) bool {
	return strings.Contains(strings.ToLower(d.name), strings.ToLower(strings.TrimSpace(term)))
}
