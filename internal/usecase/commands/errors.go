package commands

import (
	"errors"

	"lounge-pos/internal/domain/catalog"
	"lounge-pos/internal/domain/device"
	"lounge-pos/internal/domain/pricing"
	"lounge-pos/internal/domain/reservation"
	"lounge-pos/internal/infra"
	"lounge-pos/internal/pkg/errs"
	"lounge-pos/internal/usecase/queries"
)

var (
	ErrDeviceNotFound      = queries.ErrDeviceNotFound
	ErrDeviceRunning       = errs.New("device is running")
	ErrDeviceNotRunning    = errs.New("device is not running")
	ErrModeLocked          = errs.New("mode locked while running")
	ErrInvalidDevice       = errs.New("invalid device")
	ErrDrinkNotFound       = errs.New("drink not found")
	ErrInvalidDrink        = errs.New("invalid drink")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidReservation  = errs.New("invalid reservation")
	ErrInvalidPricing      = errs.New("invalid pricing")
	ErrInvalidCredentials  = errs.New("invalid credentials")
	ErrTokenGeneration     = errs.New("token generation failed")
)

// markNotFound tags a store miss with the usecase sentinel for that entity.
func markNotFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}

func markDomainErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, device.ErrAlreadyRunning), errors.Is(err, device.ErrRunningRemoval):
		return errs.Mark(err, ErrDeviceRunning)
	case errors.Is(err, device.ErrNotRunning):
		return errs.Mark(err, ErrDeviceNotRunning)
	case errors.Is(err, device.ErrModeLocked):
		return errs.Mark(err, ErrModeLocked)
	case errors.Is(err, device.ErrReservationNotFound):
		return errs.Mark(err, ErrReservationNotFound)
	case errors.Is(err, device.ErrEmptyDeviceName), errors.Is(err, device.ErrDeviceNameTooLong):
		return errs.Mark(err, ErrInvalidDevice)
	case errors.Is(err, reservation.ErrEmptyCustomerName),
		errors.Is(err, reservation.ErrCustomerNameLong),
		errors.Is(err, reservation.ErrInvalidDuration),
		errors.Is(err, reservation.ErrInvalidTimeOfDay):
		return errs.Mark(err, ErrInvalidReservation)
	case errors.Is(err, catalog.ErrEmptyDrinkName),
		errors.Is(err, catalog.ErrDrinkNameTooLong),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, catalog.ErrNegativeStock):
		return errs.Mark(err, ErrInvalidDrink)
	case errors.Is(err, pricing.ErrInvalidRate):
		return errs.Mark(err, ErrInvalidPricing)
	default:
		return err
	}
}
