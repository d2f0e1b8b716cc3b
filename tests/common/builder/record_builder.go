//go:build unit || e2e

package builder

import (
	"time"

	"lounge-pos/internal/domain/pricing"
	"lounge-pos/internal/domain/session"
	"lounge-pos/internal/pkg/money"

	"github.com/google/uuid"
)

type RecordBuilder struct {
	ID            uuid.UUID
	DeviceID      uuid.UUID
	DeviceName    string
	Mode          pricing.Mode
	StartedAt     time.Time
	EndedAt       time.Time
	BilledMinutes int64
	PlayTotal     string
	DrinksTotal   string
}

func NewRecordBuilder() *RecordBuilder {
	start := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	return &RecordBuilder{
		ID:            uuid.New(),
		DeviceID:      uuid.New(),
		DeviceName:    "Console 1",
		Mode:          pricing.ModeSingle,
		StartedAt:     start,
		EndedAt:       start.Add(time.Hour),
		BilledMinutes: 60,
		PlayTotal:     "20",
		DrinksTotal:   "0",
	}
}

func (b *RecordBuilder) Build() *session.Record {
	return session.NewRecord(session.RecordParams{
		ID:            b.ID,
		DeviceID:      b.DeviceID,
		DeviceName:    b.DeviceName,
		Mode:          b.Mode,
		StartedAt:     b.StartedAt,
		EndedAt:       b.EndedAt,
		BilledMinutes: b.BilledMinutes,
		PlayTotal:     money.MustParse(b.PlayTotal),
		DrinksTotal:   money.MustParse(b.DrinksTotal),
	})
}

// Between sets both ends of the session and bills whole elapsed minutes.
func (b *RecordBuilder) Between(start, end time.Time) *RecordBuilder {
	b.StartedAt, b.EndedAt = start, end
	b.BilledMinutes = int64(end.Sub(start) / time.Minute)
	return b
}

func (b *RecordBuilder) EndedAtTime(end time.Time) *RecordBuilder {
	b.EndedAt = end
	return b
}

func (b *RecordBuilder) Charges(play, drinks string) *RecordBuilder {
	b.PlayTotal, b.DrinksTotal = play, drinks
	return b
}

func (b *RecordBuilder) OnDevice(name string) *RecordBuilder {
	b.DeviceName = name
	return b
}
