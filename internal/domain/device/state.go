package device

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
)

func (s Status) String() string {
	return string(s)
}

// State is either Idle or Running. A start time and a basket exist only
// inside Running, so an idle device cannot carry either.
type State interface {
	Status() Status
	isState()
}

type Idle struct{}

func (Idle) Status() Status { return StatusIdle }
func (Idle) isState()       {}

type Running struct {
	startedAt time.Time
	basket    []LineItem
}

func (Running) Status() Status { return StatusRunning }
func (Running) isState()       {}

func (r Running) StartedAt() time.Time { return r.startedAt }

func (r Running) Basket() []LineItem {
	return slices.Clone(r.basket)
}

func (r Running) DrinksTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.basket {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (r Running) clone() Running {
	return Running{startedAt: r.startedAt, basket: slices.Clone(r.basket)}
}
