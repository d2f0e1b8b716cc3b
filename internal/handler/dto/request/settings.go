package request

import (
	"lounge-pos/internal/domain/pricing"
	"lounge-pos/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

// UpdatePricingRequest is a partial update; omitted rates keep their value.
type UpdatePricingRequest struct {
	SinglePrice *decimal.Decimal `json:"singlePrice,omitempty"`
	MultiPrice  *decimal.Decimal `json:"multiPrice,omitempty"`
	RoomPrice   *decimal.Decimal `json:"roomPrice,omitempty"`
}

// Empty reports a body that names no rate at all.
func (r UpdatePricingRequest) Empty() bool {
	return !patch.AnySet(r.SinglePrice, r.MultiPrice, r.RoomPrice)
}

func (r UpdatePricingRequest) ApplyTo(current pricing.Settings) (pricing.Settings, error) {
	return pricing.NewSettings(
		patch.Coalesce(r.SinglePrice, current.SinglePrice()),
		patch.Coalesce(r.MultiPrice, current.MultiPrice()),
		patch.Coalesce(r.RoomPrice, current.RoomPrice()),
	)
}
