package request

import (
	"time"

	"lounge-pos/internal/domain/reservation"
	"lounge-pos/internal/pkg/patch"
)

type CreateReservationRequest struct {
	CustomerName string `json:"customerName" binding:"required"`
	StartTime    string `json:"startTime" binding:"required"` // HH:MM, lounge local time
	DurationMin  *int   `json:"durationMin,omitempty"`
	IsLoyal      bool   `json:"isLoyal"`
}

func (r CreateReservationRequest) ToDomain(createdAt time.Time) (reservation.Reservation, error) {
	startTime, err := reservation.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return reservation.Reservation{}, err
	}

	// zero selects the default duration
	duration := patch.Coalesce(r.DurationMin, 0)

	return reservation.NewReservation(r.CustomerName, startTime, duration, r.IsLoyal, createdAt)
}
