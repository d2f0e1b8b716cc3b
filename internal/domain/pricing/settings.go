package pricing

import (
	"errors"

	"lounge-pos/internal/pkg/money"

	"github.com/shopspring/decimal"
)

var ErrInvalidRate = errors.New("hourly rate must be positive")

// Mode is the play mode of a standard device. Rooms ignore it.
type Mode string

const (
	ModeSingle Mode = "single"
	ModeMulti  Mode = "multi"
)

func (m Mode) String() string {
	return string(m)
}

func (m Mode) IsValid() bool {
	switch m {
	case ModeSingle, ModeMulti:
		return true
	default:
		return false
	}
}

func (m Mode) Toggled() Mode {
	if m == ModeSingle {
		return ModeMulti
	}
	return ModeSingle
}

// Settings are the three global hourly rates. They are read on every cost
// computation, never snapshotted at session start.
type Settings struct {
	singlePrice decimal.Decimal
	multiPrice  decimal.Decimal
	roomPrice   decimal.Decimal
}

func NewSettings(singlePrice, multiPrice, roomPrice decimal.Decimal) (Settings, error) {
	for _, p := range []decimal.Decimal{singlePrice, multiPrice, roomPrice} {
		if err := money.RequirePositive(p); err != nil {
			return Settings{}, ErrInvalidRate
		}
	}
	return Settings{
		singlePrice: singlePrice,
		multiPrice:  multiPrice,
		roomPrice:   roomPrice,
	}, nil
}

func (s Settings) SinglePrice() decimal.Decimal { return s.singlePrice }
func (s Settings) MultiPrice() decimal.Decimal  { return s.multiPrice }
func (s Settings) RoomPrice() decimal.Decimal   { return s.roomPrice }
