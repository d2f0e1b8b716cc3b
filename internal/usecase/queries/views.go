package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type DeviceView struct {
	ID             uuid.UUID
	Name           string
	IsRoom         bool
	Mode           string
	Status         string
	StartedAt      *time.Time
	ElapsedMinutes int64
	Rate           decimal.Decimal
	DrinksTotal    decimal.Decimal
	LiveTotal      decimal.Decimal
	Basket         []LineItemView
	Reservations   []ReservationView
}

type LineItemView struct {
	DrinkID   uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Subtotal  decimal.Decimal
}

// ReservationView entries are listed in start priority order.
type ReservationView struct {
	ID           uuid.UUID
	CustomerName string
	StartTime    string
	DurationMin  int
	IsLoyal      bool
	CreatedAt    time.Time
}

type DrinkView struct {
	ID       uuid.UUID
	Name     string
	Price    decimal.Decimal
	Stock    int
	LowStock bool
}

type PricingView struct {
	SinglePrice decimal.Decimal
	MultiPrice  decimal.Decimal
	RoomPrice   decimal.Decimal
}

type HistoryEntry struct {
	ID            uuid.UUID
	DeviceID      uuid.UUID
	DeviceName    string
	Mode          string
	StartedAt     time.Time
	EndedAt       time.Time
	BilledMinutes int64
	PlayTotal     decimal.Decimal
	DrinksTotal   decimal.Decimal
	TotalAmount   decimal.Decimal
}

type HistoryPage struct {
	Items      []HistoryEntry
	NextCursor string
}

type HourlyRevenueView struct {
	Hour    int
	Revenue decimal.Decimal
}

type DailyStatsView struct {
	Date          string
	SessionCount  int
	Revenue       decimal.Decimal
	PlayRevenue   decimal.Decimal
	DrinksRevenue decimal.Decimal
	Hourly        []HourlyRevenueView
}
