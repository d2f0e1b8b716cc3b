package queries

import (
	"time"

	"lounge-pos/internal/domain/billing"
	"lounge-pos/internal/domain/catalog"
	"lounge-pos/internal/domain/device"
	"lounge-pos/internal/domain/pricing"
	"lounge-pos/internal/domain/reservation"
	"lounge-pos/internal/domain/session"

	"github.com/shopspring/decimal"
)

func NewDeviceView(d *device.Device, settings pricing.Settings, now time.Time) DeviceView {
	v := DeviceView{
		ID:          d.ID(),
		Name:        d.Name(),
		IsRoom:      d.IsRoom(),
		Mode:        d.Mode().String(),
		Status:      d.Status().String(),
		Rate:        pricing.Rate(settings, d),
		DrinksTotal: decimal.Zero,
		LiveTotal:   decimal.Zero,
		Basket:      []LineItemView{},
	}

	if running, ok := d.Running(); ok {
		started := running.StartedAt()
		v.StartedAt = &started
		v.ElapsedMinutes = billing.DisplayMinutes(started, now)
		v.DrinksTotal = running.DrinksTotal()
		v.LiveTotal = billing.LiveTotal(d, settings, now)
		for _, item := range running.Basket() {
			v.Basket = append(v.Basket, LineItemView{
				DrinkID:   item.DrinkID(),
				Name:      item.Name(),
				UnitPrice: item.UnitPrice(),
				Quantity:  item.Quantity(),
				Subtotal:  item.Subtotal(),
			})
		}
	}

	queue := reservation.SortByPriority(d.Reservations())
	v.Reservations = make([]ReservationView, 0, len(queue))
	for _, r := range queue {
		v.Reservations = append(v.Reservations, NewReservationView(r))
	}
	return v
}

func NewReservationView(r reservation.Reservation) ReservationView {
	return ReservationView{
		ID:           r.ID(),
		CustomerName: r.CustomerName(),
		StartTime:    r.StartTime().String(),
		DurationMin:  r.DurationMin(),
		IsLoyal:      r.IsLoyal(),
		CreatedAt:    r.CreatedAt(),
	}
}

func NewDrinkView(d *catalog.Drink, lowStockThreshold int) DrinkView {
	return DrinkView{
		ID:       d.ID(),
		Name:     d.Name(),
		Price:    d.Price(),
		Stock:    d.Stock(),
		LowStock: d.IsLowStock(lowStockThreshold),
	}
}

func NewPricingView(s pricing.Settings) PricingView {
	return PricingView{
		SinglePrice: s.SinglePrice(),
		MultiPrice:  s.MultiPrice(),
		RoomPrice:   s.RoomPrice(),
	}
}

func NewHistoryEntry(r *session.Record) HistoryEntry {
	return HistoryEntry{
		ID:            r.ID(),
		DeviceID:      r.DeviceID(),
		DeviceName:    r.DeviceName(),
		Mode:          r.Mode().String(),
		StartedAt:     r.StartedAt(),
		EndedAt:       r.EndedAt(),
		BilledMinutes: r.BilledMinutes(),
		PlayTotal:     r.PlayTotal(),
		DrinksTotal:   r.DrinksTotal(),
		TotalAmount:   r.TotalAmount(),
	}
}

func NewDailyStatsView(s session.DailyStats) DailyStatsView {
	v := DailyStatsView{
		Date:          s.Date.Format(time.DateOnly),
		SessionCount:  s.SessionCount,
		Revenue:       s.Revenue,
		PlayRevenue:   s.PlayRevenue,
		DrinksRevenue: s.DrinksRevenue,
		Hourly:        make([]HourlyRevenueView, 0, len(s.Hourly)),
	}
	for _, h := range s.Hourly {
		v.Hourly = append(v.Hourly, HourlyRevenueView{Hour: h.Hour, Revenue: h.Revenue})
	}
	return v
}
