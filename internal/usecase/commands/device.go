package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"lounge-pos/internal/domain/billing"
	"lounge-pos/internal/domain/catalog"
	"lounge-pos/internal/domain/pricing"
	reqdto "lounge-pos/internal/handler/dto/request"
	"lounge-pos/internal/pkg/clock"
	"lounge-pos/internal/pkg/errs"
	"lounge-pos/internal/pkg/money"
	"lounge-pos/internal/usecase/queries"
	"lounge-pos/internal/usecase/shared"

	"github.com/google/uuid"
)

type RefusalReason string

const (
	ReasonOutOfStock       RefusalReason = "out_of_stock"
	ReasonDeviceNotRunning RefusalReason = "device_not_running"
)

// AddDrinkOutcome distinguishes an applied sale from a refused one. A refusal
// leaves stock and basket exactly as they were.
type AddDrinkOutcome struct {
	Applied        bool
	Reason         RefusalReason
	DrinkName      string
	RemainingStock int
}

//go:generate mockgen -source=device.go -destination=../../../tests/mock/commands/device_mock.go -package=commandsmock

type DeviceCommands interface {
	AddDevice(ctx context.Context, req reqdto.CreateDeviceRequest) (uuid.UUID, error)
	RemoveDevice(ctx context.Context, id uuid.UUID) error
	StartSession(ctx context.Context, id uuid.UUID) (time.Time, error)
	StopSession(ctx context.Context, id uuid.UUID) (*queries.HistoryEntry, error)
	ToggleMode(ctx context.Context, id uuid.UUID) (pricing.Mode, error)
	AddDrink(ctx context.Context, deviceID, drinkID uuid.UUID) (AddDrinkOutcome, error)
	AddReservation(ctx context.Context, deviceID uuid.UUID, req reqdto.CreateReservationRequest) (uuid.UUID, error)
	CancelReservation(ctx context.Context, deviceID, reservationID uuid.UUID) error
}

type deviceCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewDeviceCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) DeviceCommands {
	return &deviceCommandsImpl{
		uow:    uow,
		clock:  clk,
		logger: logger,
	}
}

func (c *deviceCommandsImpl) AddDevice(ctx context.Context, req reqdto.CreateDeviceRequest) (uuid.UUID, error) {
	d, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, markDomainErr(err)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Devices().Create(ctx, d)
	})
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "add device")
	}

	c.logger.Info("device added", "device_id", d.ID(), "name", d.Name(), "is_room", d.IsRoom())
	return d.ID(), nil
}

func (c *deviceCommandsImpl) RemoveDevice(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Devices().FindByID(ctx, id)
		if err != nil {
			return markNotFound(err, ErrDeviceNotFound)
		}
		if err := d.EnsureRemovable(); err != nil {
			return markDomainErr(err)
		}
		return tx.Devices().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	c.logger.Info("device removed", "device_id", id)
	return nil
}

func (c *deviceCommandsImpl) StartSession(ctx context.Context, id uuid.UUID) (time.Time, error) {
	now := c.clock.Now()

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Devices().FindByID(ctx, id)
		if err != nil {
			return markNotFound(err, ErrDeviceNotFound)
		}
		if err := d.Start(now); err != nil {
			return markDomainErr(err)
		}
		return tx.Devices().Save(ctx, d)
	})
	if err != nil {
		return time.Time{}, err
	}

	c.logger.Info("session started", "device_id", id, "started_at", now)
	return now, nil
}

// StopSession bills the open session and appends it to the ledger in the
// same transaction that returns the device to idle.
func (c *deviceCommandsImpl) StopSession(ctx context.Context, id uuid.UUID) (*queries.HistoryEntry, error) {
	now := c.clock.Now()
	var entry queries.HistoryEntry

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Devices().FindByID(ctx, id)
		if err != nil {
			return markNotFound(err, ErrDeviceNotFound)
		}
		settings, err := tx.Settings().Get(ctx)
		if err != nil {
			return err
		}

		record, err := billing.Finalize(uuid.New(), d, settings, now)
		if err != nil {
			return markDomainErr(err)
		}
		if err := tx.Devices().Save(ctx, d); err != nil {
			return err
		}
		if err := tx.Ledger().Append(ctx, record); err != nil {
			return err
		}
		entry = queries.NewHistoryEntry(record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("session stopped",
		"device_id", id,
		"billed_minutes", entry.BilledMinutes,
		"play_total", money.Display(entry.PlayTotal),
		"drinks_total", money.Display(entry.DrinksTotal),
		"total", money.Display(entry.TotalAmount))
	return &entry, nil
}

func (c *deviceCommandsImpl) ToggleMode(ctx context.Context, id uuid.UUID) (pricing.Mode, error) {
	var mode pricing.Mode

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Devices().FindByID(ctx, id)
		if err != nil {
			return markNotFound(err, ErrDeviceNotFound)
		}
		if err := d.ToggleMode(); err != nil {
			return markDomainErr(err)
		}
		mode = d.Mode()
		return tx.Devices().Save(ctx, d)
	})
	if err != nil {
		return "", err
	}
	return mode, nil
}

// AddDrink takes one unit from the catalog and puts it on the device's open
// basket. Both writes commit together or not at all.
func (c *deviceCommandsImpl) AddDrink(ctx context.Context, deviceID, drinkID uuid.UUID) (AddDrinkOutcome, error) {
	var outcome AddDrinkOutcome

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Devices().FindByID(ctx, deviceID)
		if err != nil {
			return markNotFound(err, ErrDeviceNotFound)
		}
		drink, err := tx.Drinks().FindByID(ctx, drinkID)
		if err != nil {
			return markNotFound(err, ErrDrinkNotFound)
		}

		outcome = AddDrinkOutcome{DrinkName: drink.Name(), RemainingStock: drink.Stock()}
		if !d.IsRunning() {
			outcome.Reason = ReasonDeviceNotRunning
			return nil
		}
		if err := drink.Take(); err != nil {
			if errors.Is(err, catalog.ErrOutOfStock) {
				outcome.Reason = ReasonOutOfStock
				return nil
			}
			return err
		}
		if err := d.AddLineItem(drink.ID(), drink.Name(), drink.Price()); err != nil {
			return markDomainErr(err)
		}

		if err := tx.Drinks().Save(ctx, drink); err != nil {
			return err
		}
		if err := tx.Devices().Save(ctx, d); err != nil {
			return err
		}
		outcome.Applied = true
		outcome.RemainingStock = drink.Stock()
		return nil
	})
	if err != nil {
		return AddDrinkOutcome{}, err
	}

	if !outcome.Applied {
		c.logger.Warn("drink refused", "device_id", deviceID, "drink_id", drinkID, "reason", string(outcome.Reason))
	}
	return outcome, nil
}

func (c *deviceCommandsImpl) AddReservation(ctx context.Context, deviceID uuid.UUID, req reqdto.CreateReservationRequest) (uuid.UUID, error) {
	res, err := req.ToDomain(c.clock.Now())
	if err != nil {
		return uuid.Nil, markDomainErr(err)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Devices().FindByID(ctx, deviceID)
		if err != nil {
			return markNotFound(err, ErrDeviceNotFound)
		}
		d.AddReservation(res)
		return tx.Devices().Save(ctx, d)
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.logger.Info("reservation added",
		"device_id", deviceID,
		"reservation_id", res.ID(),
		"start_time", res.StartTime().String(),
		"is_loyal", res.IsLoyal())
	return res.ID(), nil
}

func (c *deviceCommandsImpl) CancelReservation(ctx context.Context, deviceID, reservationID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Devices().FindByID(ctx, deviceID)
		if err != nil {
			return markNotFound(err, ErrDeviceNotFound)
		}
		if err := d.CancelReservation(reservationID); err != nil {
			return markDomainErr(err)
		}
		return tx.Devices().Save(ctx, d)
	})
}
