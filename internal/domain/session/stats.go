package session

import (
	"time"

	"github.com/shopspring/decimal"
)

// chartStartHour mirrors the dashboard: quiet morning hours are hidden
// unless they earned something.
const chartStartHour = 8

type HourlyRevenue struct {
	Hour    int
	Revenue decimal.Decimal
}

type DailyStats struct {
	Date          time.Time
	SessionCount  int
	Revenue       decimal.Decimal
	PlayRevenue   decimal.Decimal
	DrinksRevenue decimal.Decimal
	Hourly        []HourlyRevenue
}

// SummarizeDay aggregates the records whose start falls on day (a date in
// loc). Records are bucketed by their start hour in loc.
func SummarizeDay(records []*Record, day time.Time, loc *time.Location) DailyStats {
	y, m, d := day.In(loc).Date()
	stats := DailyStats{
		Date:          time.Date(y, m, d, 0, 0, 0, 0, loc),
		Revenue:       decimal.Zero,
		PlayRevenue:   decimal.Zero,
		DrinksRevenue: decimal.Zero,
	}

	var buckets [24]decimal.Decimal
	for i := range buckets {
		buckets[i] = decimal.Zero
	}

	for _, r := range records {
		start := r.startedAt.In(loc)
		ry, rm, rd := start.Date()
		if ry != y || rm != m || rd != d {
			continue
		}
		stats.SessionCount++
		stats.Revenue = stats.Revenue.Add(r.totalAmount)
		stats.PlayRevenue = stats.PlayRevenue.Add(r.playTotal)
		stats.DrinksRevenue = stats.DrinksRevenue.Add(r.drinksTotal)
		buckets[start.Hour()] = buckets[start.Hour()].Add(r.totalAmount)
	}

	for h, rev := range buckets {
		if rev.IsPositive() || h > chartStartHour {
			stats.Hourly = append(stats.Hourly, HourlyRevenue{Hour: h, Revenue: rev})
		}
	}
	return stats
}
