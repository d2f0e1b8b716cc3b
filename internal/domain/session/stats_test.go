//go:build unit

package session_test

import (
	"testing"
	"time"

	"lounge-pos/internal/domain/pricing"
	"lounge-pos/internal/domain/session"
	"lounge-pos/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(start time.Time, play, drinks string) *session.Record {
	return session.NewRecord(session.RecordParams{
		ID:          uuid.New(),
		DeviceID:    uuid.New(),
		DeviceName:  "Console 1",
		Mode:        pricing.ModeSingle,
		StartedAt:   start,
		EndedAt:     start.Add(time.Hour),
		PlayTotal:   money.MustParse(play),
		DrinksTotal: money.MustParse(drinks),
	})
}

func TestNewRecord(t *testing.T) {
	r := record(time.Now(), "20", "15")
	assert.Equal(t, "35", r.TotalAmount().String())
	assert.Equal(t, time.Hour, r.Duration())
}

func TestSummarizeDay(t *testing.T) {
	loc := time.FixedZone("EET", 2*60*60)
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, loc)

	records := []*session.Record{
		record(time.Date(2025, 3, 14, 10, 15, 0, 0, loc), "20", "10"),
		record(time.Date(2025, 3, 14, 10, 45, 0, 0, loc), "30", "0"),
		record(time.Date(2025, 3, 14, 3, 0, 0, 0, loc), "5", "0"),
		// 23:30 UTC on the 13th is 01:30 on the 14th in loc
		record(time.Date(2025, 3, 13, 23, 30, 0, 0, time.UTC), "7", "0"),
		record(time.Date(2025, 3, 15, 10, 0, 0, 0, loc), "100", "100"),
	}

	stats := session.SummarizeDay(records, day, loc)

	assert.Equal(t, 4, stats.SessionCount)
	assert.Equal(t, "72", stats.Revenue.String())
	assert.Equal(t, "62", stats.PlayRevenue.String())
	assert.Equal(t, "10", stats.DrinksRevenue.String())

	byHour := map[int]string{}
	for _, h := range stats.Hourly {
		byHour[h.Hour] = h.Revenue.String()
	}
	require.Contains(t, byHour, 10)
	assert.Equal(t, "60", byHour[10])
	assert.Equal(t, "5", byHour[3])
	assert.Equal(t, "7", byHour[1])
	assert.NotContains(t, byHour, 2, "quiet early hour is hidden")
	assert.NotContains(t, byHour, 8, "hour 8 is hidden when empty")
	assert.Contains(t, byHour, 9)
	assert.Contains(t, byHour, 23)
}
