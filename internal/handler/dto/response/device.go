package response

import (
	"time"

	"lounge-pos/internal/pkg/money"
	"lounge-pos/internal/usecase/queries"

	"github.com/google/uuid"
)

type DeviceResponse struct {
	ID             uuid.UUID             `json:"id"`
	Name           string                `json:"name"`
	IsRoom         bool                  `json:"isRoom"`
	Mode           string                `json:"mode"`
	Status         string                `json:"status"`
	StartedAt      *time.Time            `json:"startedAt,omitempty"`
	ElapsedMinutes int64                 `json:"elapsedMinutes"`
	Rate           string                `json:"rate"`
	DrinksTotal    string                `json:"drinksTotal"`
	LiveTotal      string                `json:"liveTotal"`
	Basket         []LineItemResponse    `json:"basket"`
	Reservations   []ReservationResponse `json:"reservations"`
}

type LineItemResponse struct {
	DrinkID   uuid.UUID `json:"drinkId"`
	Name      string    `json:"name"`
	UnitPrice string    `json:"unitPrice"`
	Quantity  int       `json:"quantity"`
	Subtotal  string    `json:"subtotal"`
}

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customerName"`
	StartTime    string    `json:"startTime"`
	DurationMin  int       `json:"durationMin"`
	IsLoyal      bool      `json:"isLoyal"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type StartSessionResponse struct {
	DeviceID  uuid.UUID `json:"deviceId"`
	StartedAt time.Time `json:"startedAt"`
}

type ToggleModeResponse struct {
	DeviceID uuid.UUID `json:"deviceId"`
	Mode     string    `json:"mode"`
}

type AddDrinkResponse struct {
	Applied        bool   `json:"applied"`
	Reason         string `json:"reason,omitempty"`
	DrinkName      string `json:"drinkName"`
	RemainingStock int    `json:"remainingStock"`
}

func FromDeviceView(v queries.DeviceView) (DeviceResponse, error) {
	res := DeviceResponse{
		ID:             v.ID,
		Name:           v.Name,
		IsRoom:         v.IsRoom,
		Mode:           v.Mode,
		Status:         v.Status,
		StartedAt:      v.StartedAt,
		ElapsedMinutes: v.ElapsedMinutes,
		Rate:           money.Display(v.Rate),
		DrinksTotal:    money.Display(v.DrinksTotal),
		LiveTotal:      money.Display(v.LiveTotal),
		Basket:         make([]LineItemResponse, 0, len(v.Basket)),
		Reservations:   make([]ReservationResponse, 0, len(v.Reservations)),
	}
	for _, item := range v.Basket {
		var li LineItemResponse
		if err := copyView(&li, &item); err != nil {
			return DeviceResponse{}, err
		}
		res.Basket = append(res.Basket, li)
	}
	for _, r := range v.Reservations {
		var rr ReservationResponse
		if err := copyView(&rr, &r); err != nil {
			return DeviceResponse{}, err
		}
		res.Reservations = append(res.Reservations, rr)
	}
	return res, nil
}

func FromDeviceViews(vs []queries.DeviceView) ([]DeviceResponse, error) {
	out := make([]DeviceResponse, 0, len(vs))
	for _, v := range vs {
		res, err := FromDeviceView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}
