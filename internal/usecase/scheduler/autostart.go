package scheduler

import (
	"context"
	"log/slog"
	"time"

	"lounge-pos/internal/domain/reservation"
	"lounge-pos/internal/pkg/errs"
	"lounge-pos/internal/usecase/shared"

	"github.com/google/uuid"
)

type StartedSession struct {
	DeviceID      uuid.UUID
	ReservationID uuid.UUID
	CustomerName  string
}

// AutoStarter turns due reservations into running sessions.
type AutoStarter struct {
	uow    shared.UnitOfWork
	loc    *time.Location
	logger *slog.Logger
}

func NewAutoStarter(uow shared.UnitOfWork, lounge shared.Lounge, logger *slog.Logger) *AutoStarter {
	return &AutoStarter{
		uow:    uow,
		loc:    lounge.Location,
		logger: logger,
	}
}

// Tick resolves one minute of the booking book. For every idle device the
// best matching reservation (loyal first, then earliest booked) starts the
// device and leaves the queue; other matches stay queued. Running devices are
// skipped. The whole tick is one transaction, serialized with operator
// actions.
func (a *AutoStarter) Tick(ctx context.Context, now time.Time) ([]StartedSession, error) {
	minute := reservation.TimeOfDayAt(now.In(a.loc))
	var started []StartedSession

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		devices, err := tx.Devices().List(ctx)
		if err != nil {
			return err
		}

		for _, d := range devices {
			if d.IsRunning() {
				continue
			}
			winner, ok := reservation.SelectWinner(d.Reservations(), minute)
			if !ok {
				continue
			}
			if err := d.StartReserved(winner.ID(), now); err != nil {
				return errs.Wrapf(err, "auto-start device %s", d.ID())
			}
			if err := tx.Devices().Save(ctx, d); err != nil {
				return err
			}
			started = append(started, StartedSession{
				DeviceID:      d.ID(),
				ReservationID: winner.ID(),
				CustomerName:  winner.CustomerName(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, s := range started {
		a.logger.Info("reservation auto-started session",
			"device_id", s.DeviceID,
			"reservation_id", s.ReservationID,
			"customer", s.CustomerName,
			"minute", minute.String())
	}
	return started, nil
}
