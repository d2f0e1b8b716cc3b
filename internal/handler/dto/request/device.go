package request

import (
	"lounge-pos/internal/domain/device"

	"github.com/google/uuid"
)

type CreateDeviceRequest struct {
	Name   string `json:"name" binding:"required"`
	IsRoom bool   `json:"isRoom"`
}

func (r CreateDeviceRequest) ToDomain() (*device.Device, error) {
	return device.NewDevice(r.Name, r.IsRoom)
}

type AddDrinkRequest struct {
	DrinkID uuid.UUID `json:"drinkId" binding:"required"`
}
