package pricing

import "github.com/shopspring/decimal"

// Billable is the part of a device the rate depends on.
type Billable interface {
	IsRoom() bool
	Mode() Mode
}

// Rate returns the hourly rate for b under s. Rooms always bill at the room
// rate; status plays no part.
func Rate(s Settings, b Billable) decimal.Decimal {
	if b.IsRoom() {
		return s.roomPrice
	}
	if b.Mode() == ModeSingle {
		return s.singlePrice
	}
	return s.multiPrice
}
