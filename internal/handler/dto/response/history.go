package response

import (
	"time"

	"lounge-pos/internal/usecase/queries"

	"github.com/google/uuid"
)

type HistoryEntryResponse struct {
	ID            uuid.UUID `json:"id"`
	DeviceID      uuid.UUID `json:"deviceId"`
	DeviceName    string    `json:"deviceName"`
	Mode          string    `json:"mode"`
	StartedAt     time.Time `json:"startedAt"`
	EndedAt       time.Time `json:"endedAt"`
	BilledMinutes int64     `json:"billedMinutes"`
	PlayTotal     string    `json:"playTotal"`
	DrinksTotal   string    `json:"drinksTotal"`
	TotalAmount   string    `json:"totalAmount"`
}

type HistoryPageResponse struct {
	Items      []HistoryEntryResponse `json:"items"`
	NextCursor string                 `json:"nextCursor,omitempty"`
}

type HourlyRevenueResponse struct {
	Hour    int    `json:"hour"`
	Revenue string `json:"revenue"`
}

type DailyStatsResponse struct {
	Date          string                  `json:"date"`
	SessionCount  int                     `json:"sessionCount"`
	Revenue       string                  `json:"revenue"`
	PlayRevenue   string                  `json:"playRevenue"`
	DrinksRevenue string                  `json:"drinksRevenue"`
	Hourly        []HourlyRevenueResponse `json:"hourly" copier:"-"`
}

func FromHistoryEntry(v *queries.HistoryEntry) (HistoryEntryResponse, error) {
	var res HistoryEntryResponse
	if err := copyView(&res, v); err != nil {
		return HistoryEntryResponse{}, err
	}
	return res, nil
}

func FromHistoryPage(p *queries.HistoryPage) (HistoryPageResponse, error) {
	res := HistoryPageResponse{
		Items:      make([]HistoryEntryResponse, 0, len(p.Items)),
		NextCursor: p.NextCursor,
	}
	for i := range p.Items {
		item, err := FromHistoryEntry(&p.Items[i])
		if err != nil {
			return HistoryPageResponse{}, err
		}
		res.Items = append(res.Items, item)
	}
	return res, nil
}

func FromDailyStatsView(v *queries.DailyStatsView) (DailyStatsResponse, error) {
	var res DailyStatsResponse
	if err := copyView(&res, v); err != nil {
		return DailyStatsResponse{}, err
	}
	res.Hourly = make([]HourlyRevenueResponse, 0, len(v.Hourly))
	for i := range v.Hourly {
		var h HourlyRevenueResponse
		if err := copyView(&h, &v.Hourly[i]); err != nil {
			return DailyStatsResponse{}, err
		}
		res.Hourly = append(res.Hourly, h)
	}
	return res, nil
}
