package queries

import (
	"context"

	"lounge-pos/internal/infra"
	"lounge-pos/internal/pkg/clock"
	"lounge-pos/internal/pkg/errs"
	"lounge-pos/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDeviceNotFound = errs.New("device not found")

//go:generate mockgen -source=device.go -destination=../../../tests/mock/queries/device_mock.go -package=queriesmock

type DeviceQueries interface {
	ListDevices(ctx context.Context) ([]DeviceView, error)
	GetDevice(ctx context.Context, id uuid.UUID) (*DeviceView, error)
}

type deviceQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDeviceQueries(uow shared.UnitOfWork, clk clock.Clock) DeviceQueries {
	return &deviceQueriesImpl{uow: uow, clock: clk}
}

// ListDevices reports live totals computed at a single instant so every card
// on the dashboard agrees with the others.
func (q *deviceQueriesImpl) ListDevices(ctx context.Context) ([]DeviceView, error) {
	now := q.clock.Now()
	var views []DeviceView

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		settings, err := tx.Settings().Get(ctx)
		if err != nil {
			return err
		}
		devices, err := tx.Devices().List(ctx)
		if err != nil {
			return err
		}
		views = make([]DeviceView, 0, len(devices))
		for _, d := range devices {
			views = append(views, NewDeviceView(d, settings, now))
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "list devices")
	}
	return views, nil
}

func (q *deviceQueriesImpl) GetDevice(ctx context.Context, id uuid.UUID) (*DeviceView, error) {
	now := q.clock.Now()
	var view DeviceView

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		settings, err := tx.Settings().Get(ctx)
		if err != nil {
			return err
		}
		d, err := tx.Devices().FindByID(ctx, id)
		if err != nil {
			return err
		}
		view = NewDeviceView(d, settings, now)
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrDeviceNotFound)
		}
		return nil, errs.Wrap(err, "get device")
	}
	return &view, nil
}
