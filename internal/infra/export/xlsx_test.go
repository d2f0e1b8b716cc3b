//go:build unit

package export_test

import (
	"bytes"
	"testing"
	"time"

	"lounge-pos/internal/infra/export"
	"lounge-pos/internal/pkg/money"
	"lounge-pos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_Export(t *testing.T) {
	start := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	entries := []queries.HistoryEntry{
		{
			ID:            uuid.New(),
			DeviceID:      uuid.New(),
			DeviceName:    "Console 1",
			Mode:          "single",
			StartedAt:     start,
			EndedAt:       start.Add(90 * time.Second),
			BilledMinutes: 2,
			PlayTotal:     money.MustParse("0.6666666666666667"),
			DrinksTotal:   money.FromInt(10),
			TotalAmount:   money.MustParse("10.6666666666666667"),
		},
		{
			ID:            uuid.New(),
			DeviceID:      uuid.New(),
			DeviceName:    "Room 1",
			Mode:          "single",
			StartedAt:     start.Add(time.Hour),
			EndedAt:       start.Add(2 * time.Hour),
			BilledMinutes: 60,
			PlayTotal:     money.FromInt(50),
			DrinksTotal:   money.Zero(),
			TotalAmount:   money.FromInt(50),
		},
	}

	data, err := export.NewXLSXExporter().Export(entries, time.UTC)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("History")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Device", "Mode", "Start", "End", "Minutes", "Play", "Drinks", "Total"}, rows[0])
	assert.Equal(t, "Console 1", rows[1][0])
	assert.Equal(t, "2025-03-01 18:00", rows[1][2])
	assert.Equal(t, "2", rows[1][4])
	assert.Equal(t, "10.67", rows[1][7])
	assert.Equal(t, "Room 1", rows[2][0])
	assert.Equal(t, "50", rows[2][7])
}

func TestXLSXExporter_Empty(t *testing.T) {
	data, err := export.NewXLSXExporter().Export(nil, time.UTC)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("History")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
