package session

import (
	"time"

	"lounge-pos/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is a finalized session. It has no setters; once appended to the
// ledger it never changes.
type Record struct {
	id            uuid.UUID
	deviceID      uuid.UUID
	deviceName    string
	mode          pricing.Mode
	startedAt     time.Time
	endedAt       time.Time
	billedMinutes int64
	playTotal     decimal.Decimal
	drinksTotal   decimal.Decimal
	totalAmount   decimal.Decimal
}

type RecordParams struct {
	ID            uuid.UUID
	DeviceID      uuid.UUID
	DeviceName    string
	Mode          pricing.Mode
	StartedAt     time.Time
	EndedAt       time.Time
	BilledMinutes int64
	PlayTotal     decimal.Decimal
	DrinksTotal   decimal.Decimal
}

// NewRecord derives totalAmount from the two charge components.
func NewRecord(p RecordParams) *Record {
	return &Record{
		id:            p.ID,
		deviceID:      p.DeviceID,
		deviceName:    p.DeviceName,
		mode:          p.Mode,
		startedAt:     p.StartedAt,
		endedAt:       p.EndedAt,
		billedMinutes: p.BilledMinutes,
		playTotal:     p.PlayTotal,
		drinksTotal:   p.DrinksTotal,
		totalAmount:   p.PlayTotal.Add(p.DrinksTotal),
	}
}

func (r *Record) ID() uuid.UUID                { return r.id }
func (r *Record) DeviceID() uuid.UUID          { return r.deviceID }
func (r *Record) DeviceName() string           { return r.deviceName }
func (r *Record) Mode() pricing.Mode           { return r.mode }
func (r *Record) StartedAt() time.Time         { return r.startedAt }
func (r *Record) EndedAt() time.Time           { return r.endedAt }
func (r *Record) BilledMinutes() int64         { return r.billedMinutes }
func (r *Record) PlayTotal() decimal.Decimal   { return r.playTotal }
func (r *Record) DrinksTotal() decimal.Decimal { return r.drinksTotal }
func (r *Record) TotalAmount() decimal.Decimal { return r.totalAmount }

func (r *Record) Duration() time.Duration {
	return r.endedAt.Sub(r.startedAt)
}
