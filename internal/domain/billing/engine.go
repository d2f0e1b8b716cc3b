// Package billing turns session time and basket contents into money.
//
// Two roundings are in play on purpose. The live total shown on a device card
// floors elapsed time to whole minutes; the final bill rounds any partial
// minute up and never charges less than one minute.
package billing

import (
	"time"

	"lounge-pos/internal/domain/device"
	"lounge-pos/internal/domain/pricing"
	"lounge-pos/internal/domain/session"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var minutesPerHour = decimal.NewFromInt(60)

// DisplayMinutes is floor((now - start) / 1m), never negative.
func DisplayMinutes(start, now time.Time) int64 {
	elapsed := now.Sub(start)
	if elapsed <= 0 {
		return 0
	}
	return int64(elapsed / time.Minute)
}

// BilledMinutes is max(1, ceil((now - start) / 1m)).
func BilledMinutes(start, now time.Time) int64 {
	elapsed := now.Sub(start)
	if elapsed <= 0 {
		return 1
	}
	return max(1, int64((elapsed+time.Minute-1)/time.Minute))
}

// PlayCharge is minutes/60 of the hourly rate.
func PlayCharge(minutes int64, hourlyRate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(minutes).Mul(hourlyRate).Div(minutesPerHour)
}

// LiveTotal is the running cost shown while a session is open. It reads d and
// settings only; an idle device costs nothing.
func LiveTotal(d *device.Device, settings pricing.Settings, now time.Time) decimal.Decimal {
	run, ok := d.Running()
	if !ok {
		return decimal.Zero
	}
	play := PlayCharge(DisplayMinutes(run.StartedAt(), now), pricing.Rate(settings, d))
	return play.Add(run.DrinksTotal())
}

// Finalize closes the open session on d and returns its record. On success d
// is idle with an empty basket; its reservations are untouched. Calling it on
// an idle device returns device.ErrNotRunning and leaves d as it was.
func Finalize(recordID uuid.UUID, d *device.Device, settings pricing.Settings, now time.Time) (*session.Record, error) {
	run, ok := d.Running()
	if !ok {
		return nil, device.ErrNotRunning
	}

	minutes := BilledMinutes(run.StartedAt(), now)
	rate := pricing.Rate(settings, d)
	params := session.RecordParams{
		ID:            recordID,
		DeviceID:      d.ID(),
		DeviceName:    d.Name(),
		Mode:          d.Mode(),
		StartedAt:     run.StartedAt(),
		EndedAt:       now,
		BilledMinutes: minutes,
		PlayTotal:     PlayCharge(minutes, rate),
		DrinksTotal:   run.DrinksTotal(),
	}

	if _, err := d.Stop(); err != nil {
		return nil, err
	}
	return session.NewRecord(params), nil
}
