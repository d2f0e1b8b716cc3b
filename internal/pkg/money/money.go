// Package money holds the currency helpers shared by pricing, billing and reporting.
// Amounts are decimal.Decimal everywhere so that per-minute charges do not drift.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNotPositive = errors.New("amount must be positive")

const DisplayPlaces = 2

func Zero() decimal.Decimal {
	return decimal.Zero
}

func FromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// Parse accepts a decimal string such as "12.50".
func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

func MustParse(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("money: invalid amount " + s + ": " + err.Error())
	}
	return d
}

func RequirePositive(d decimal.Decimal) error {
	if !d.IsPositive() {
		return ErrNotPositive
	}
	return nil
}

// Display renders an amount the way the dashboard shows it.
func Display(d decimal.Decimal) string {
	return d.StringFixed(DisplayPlaces)
}

func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
