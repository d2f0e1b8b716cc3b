//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"lounge-pos/internal/domain/device"
	"lounge-pos/internal/domain/pricing"
	"lounge-pos/internal/domain/reservation"
	reqdto "lounge-pos/internal/handler/dto/request"
	"lounge-pos/internal/infra/memstore"
	"lounge-pos/internal/pkg/clock"
	"lounge-pos/internal/pkg/errs"
	"lounge-pos/internal/pkg/money"
	"lounge-pos/internal/usecase/commands"
	"lounge-pos/tests/common/builder"
	"lounge-pos/tests/common/storetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

var sessionStart = time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

type DeviceCommandsTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memstore.Store
	clock *clock.MockClock
	cmds  commands.DeviceCommands
}

func (s *DeviceCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = storetest.NewStore(s.T())
	s.clock = clock.NewMockClock(sessionStart)
	s.cmds = commands.NewDeviceCommands(s.store, s.clock, storetest.DiscardLogger())
}

func TestDeviceCommandsSuite(t *testing.T) {
	suite.Run(t, new(DeviceCommandsTestSuite))
}

func (s *DeviceCommandsTestSuite) isErr(err, target error) {
	s.T().Helper()
	s.Truef(errs.Is(err, target), "expected %v, got %v", target, err)
}

func (s *DeviceCommandsTestSuite) runningDevice() uuid.UUID {
	return storetest.CreateDevice(s.T(), s.store, builder.NewDeviceBuilder().RunningSince(sessionStart).MustBuild())
}

func (s *DeviceCommandsTestSuite) idleDevice() uuid.UUID {
	return storetest.CreateDevice(s.T(), s.store, builder.NewDeviceBuilder().MustBuild())
}

func (s *DeviceCommandsTestSuite) TestAddDevice() {
	s.Run("success: new device is idle in single mode", func() {
		id, err := s.cmds.AddDevice(s.ctx, reqdto.CreateDeviceRequest{Name: "  Console 9 ", IsRoom: false})
		s.Require().NoError(err)

		d := storetest.LoadDevice(s.T(), s.store, id)
		s.Equal("Console 9", d.Name())
		s.Equal(device.StatusIdle, d.Status())
		s.Equal(pricing.ModeSingle, d.Mode())
	})

	s.Run("error: blank name is invalid", func() {
		_, err := s.cmds.AddDevice(s.ctx, reqdto.CreateDeviceRequest{Name: "   "})
		s.isErr(err, commands.ErrInvalidDevice)
	})
}

func (s *DeviceCommandsTestSuite) TestRemoveDevice() {
	s.Run("success: idle device is removed", func() {
		id := s.idleDevice()
		s.Require().NoError(s.cmds.RemoveDevice(s.ctx, id))

		err := s.cmds.RemoveDevice(s.ctx, id)
		s.isErr(err, commands.ErrDeviceNotFound)
	})

	s.Run("error: running device cannot be removed", func() {
		id := s.runningDevice()
		err := s.cmds.RemoveDevice(s.ctx, id)
		s.isErr(err, commands.ErrDeviceRunning)
		s.True(storetest.LoadDevice(s.T(), s.store, id).IsRunning())
	})
}

func (s *DeviceCommandsTestSuite) TestStartSession() {
	s.Run("success: starts at the current time", func() {
		id := s.idleDevice()
		startedAt, err := s.cmds.StartSession(s.ctx, id)
		s.Require().NoError(err)
		s.True(startedAt.Equal(sessionStart))

		running, ok := storetest.LoadDevice(s.T(), s.store, id).Running()
		s.Require().True(ok)
		s.True(running.StartedAt().Equal(sessionStart))
		s.Empty(running.Basket())
	})

	s.Run("error: already running keeps the original start", func() {
		id := s.runningDevice()
		s.clock.Set(sessionStart.Add(time.Hour))
		defer s.clock.Set(sessionStart)

		_, err := s.cmds.StartSession(s.ctx, id)
		s.isErr(err, commands.ErrDeviceRunning)

		running, _ := storetest.LoadDevice(s.T(), s.store, id).Running()
		s.True(running.StartedAt().Equal(sessionStart))
	})

	s.Run("error: unknown device", func() {
		_, err := s.cmds.StartSession(s.ctx, uuid.New())
		s.isErr(err, commands.ErrDeviceNotFound)
	})
}

func (s *DeviceCommandsTestSuite) TestStopSession() {
	s.Run("success: bills ninety seconds as two minutes and records the session", func() {
		pepsi := storetest.CreateDrink(s.T(), s.store, builder.NewDrinkBuilder().MustBuild())
		id := s.runningDevice()

		outcome, err := s.cmds.AddDrink(s.ctx, id, pepsi)
		s.Require().NoError(err)
		s.Require().True(outcome.Applied)

		s.clock.Set(sessionStart.Add(90 * time.Second))
		defer s.clock.Set(sessionStart)

		entry, err := s.cmds.StopSession(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(int64(2), entry.BilledMinutes)
		s.Equal("0.67", money.Display(entry.PlayTotal))
		s.Equal("10.00", money.Display(entry.DrinksTotal))
		s.Equal("10.67", money.Display(entry.TotalAmount))
		s.Equal(string(pricing.ModeSingle), entry.Mode)

		d := storetest.LoadDevice(s.T(), s.store, id)
		s.Equal(device.StatusIdle, d.Status())

		ledger := storetest.Ledger(s.T(), s.store)
		s.Require().Len(ledger, 1)
		s.Equal(entry.ID, ledger[0].ID())
		s.True(ledger[0].EndedAt().Equal(sessionStart.Add(90 * time.Second)))
	})

	s.Run("success: reservations survive the stop", func() {
		id := storetest.CreateDevice(s.T(), s.store, builder.NewDeviceBuilder().
			RunningSince(sessionStart).
			WithReservation(builder.NewReservationBuilder().At("21:00").MustBuild()).
			MustBuild())

		_, err := s.cmds.StopSession(s.ctx, id)
		s.Require().NoError(err)
		s.Len(storetest.LoadDevice(s.T(), s.store, id).Reservations(), 1)
	})

	s.Run("error: idle device leaves ledger untouched", func() {
		before := len(storetest.Ledger(s.T(), s.store))
		_, err := s.cmds.StopSession(s.ctx, s.idleDevice())
		s.isErr(err, commands.ErrDeviceNotRunning)
		s.Len(storetest.Ledger(s.T(), s.store), before)
	})
}

func (s *DeviceCommandsTestSuite) TestToggleMode() {
	s.Run("success: flips between single and multi", func() {
		id := s.idleDevice()
		mode, err := s.cmds.ToggleMode(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(pricing.ModeMulti, mode)

		mode, err = s.cmds.ToggleMode(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(pricing.ModeSingle, mode)
	})

	s.Run("error: locked while running", func() {
		id := s.runningDevice()
		_, err := s.cmds.ToggleMode(s.ctx, id)
		s.isErr(err, commands.ErrModeLocked)
		s.Equal(pricing.ModeSingle, storetest.LoadDevice(s.T(), s.store, id).Mode())
	})
}

func (s *DeviceCommandsTestSuite) TestAddDrink() {
	s.Run("success: takes stock and merges repeated drinks", func() {
		drinkID := storetest.CreateDrink(s.T(), s.store, builder.NewDrinkBuilder().WithStock(5).MustBuild())
		id := s.runningDevice()

		for range 2 {
			outcome, err := s.cmds.AddDrink(s.ctx, id, drinkID)
			s.Require().NoError(err)
			s.True(outcome.Applied)
			s.Equal("Pepsi", outcome.DrinkName)
		}

		s.Equal(3, storetest.LoadDrink(s.T(), s.store, drinkID).Stock())
		running, _ := storetest.LoadDevice(s.T(), s.store, id).Running()
		s.Require().Len(running.Basket(), 1)
		s.Equal(2, running.Basket()[0].Quantity())
		s.Equal("20.00", money.Display(running.DrinksTotal()))
	})

	s.Run("refused: out of stock leaves basket empty", func() {
		drinkID := storetest.CreateDrink(s.T(), s.store, builder.NewDrinkBuilder().WithStock(0).MustBuild())
		id := s.runningDevice()

		outcome, err := s.cmds.AddDrink(s.ctx, id, drinkID)
		s.Require().NoError(err)
		s.False(outcome.Applied)
		s.Equal(commands.ReasonOutOfStock, outcome.Reason)
		s.Equal(0, outcome.RemainingStock)

		running, _ := storetest.LoadDevice(s.T(), s.store, id).Running()
		s.Empty(running.Basket())
	})

	s.Run("refused: idle device keeps stock", func() {
		drinkID := storetest.CreateDrink(s.T(), s.store, builder.NewDrinkBuilder().WithStock(5).MustBuild())

		outcome, err := s.cmds.AddDrink(s.ctx, s.idleDevice(), drinkID)
		s.Require().NoError(err)
		s.False(outcome.Applied)
		s.Equal(commands.ReasonDeviceNotRunning, outcome.Reason)
		s.Equal(5, storetest.LoadDrink(s.T(), s.store, drinkID).Stock())
	})

	s.Run("error: unknown drink", func() {
		_, err := s.cmds.AddDrink(s.ctx, s.runningDevice(), uuid.New())
		s.isErr(err, commands.ErrDrinkNotFound)
	})

	s.Run("error: unknown device", func() {
		drinkID := storetest.CreateDrink(s.T(), s.store, builder.NewDrinkBuilder().MustBuild())
		_, err := s.cmds.AddDrink(s.ctx, uuid.New(), drinkID)
		s.isErr(err, commands.ErrDeviceNotFound)
	})

	s.Run("concurrency: stock never oversells", func() {
		const stock, attempts = 10, 30
		drinkID := storetest.CreateDrink(s.T(), s.store, builder.NewDrinkBuilder().WithStock(stock).MustBuild())
		id := s.runningDevice()

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			applied int
		)
		for range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				outcome, err := s.cmds.AddDrink(s.ctx, id, drinkID)
				if err == nil && outcome.Applied {
					mu.Lock()
					applied++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		s.Equal(stock, applied)
		s.Equal(0, storetest.LoadDrink(s.T(), s.store, drinkID).Stock())
		running, _ := storetest.LoadDevice(s.T(), s.store, id).Running()
		s.Equal(stock, running.Basket()[0].Quantity())
	})
}

func (s *DeviceCommandsTestSuite) TestAddReservation() {
	s.Run("success: default duration and creation time", func() {
		id := s.idleDevice()
		resID, err := s.cmds.AddReservation(s.ctx, id, reqdto.CreateReservationRequest{
			CustomerName: "Omar",
			StartTime:    "19:15",
			IsLoyal:      true,
		})
		s.Require().NoError(err)

		queue := storetest.LoadDevice(s.T(), s.store, id).Reservations()
		s.Require().Len(queue, 1)
		s.Equal(resID, queue[0].ID())
		s.Equal("19:15", queue[0].StartTime().String())
		s.Equal(reservation.DefaultDurationMin, queue[0].DurationMin())
		s.True(queue[0].IsLoyal())
		s.True(queue[0].CreatedAt().Equal(sessionStart))
	})

	s.Run("success: running devices accept reservations", func() {
		duration := 90
		_, err := s.cmds.AddReservation(s.ctx, s.runningDevice(), reqdto.CreateReservationRequest{
			CustomerName: "Mona",
			StartTime:    "22:00",
			DurationMin:  &duration,
		})
		s.NoError(err)
	})

	s.Run("error: invalid input", func() {
		id := s.idleDevice()
		cases := []reqdto.CreateReservationRequest{
			{CustomerName: "Omar", StartTime: "25:00"},
			{CustomerName: "Omar", StartTime: "7pm"},
			{CustomerName: " ", StartTime: "19:00"},
		}
		for _, req := range cases {
			_, err := s.cmds.AddReservation(s.ctx, id, req)
			s.Truef(errs.Is(err, commands.ErrInvalidReservation), "request %+v: %v", req, err)
		}
		s.Empty(storetest.LoadDevice(s.T(), s.store, id).Reservations())
	})

	s.Run("error: unknown device", func() {
		_, err := s.cmds.AddReservation(s.ctx, uuid.New(), reqdto.CreateReservationRequest{CustomerName: "Omar", StartTime: "19:00"})
		s.isErr(err, commands.ErrDeviceNotFound)
	})
}

func (s *DeviceCommandsTestSuite) TestCancelReservation() {
	res := builder.NewReservationBuilder().MustBuild()
	id := storetest.CreateDevice(s.T(), s.store, builder.NewDeviceBuilder().WithReservation(res).MustBuild())

	s.Require().NoError(s.cmds.CancelReservation(s.ctx, id, res.ID()))
	s.Empty(storetest.LoadDevice(s.T(), s.store, id).Reservations())

	err := s.cmds.CancelReservation(s.ctx, id, res.ID())
	s.isErr(err, commands.ErrReservationNotFound)
}
