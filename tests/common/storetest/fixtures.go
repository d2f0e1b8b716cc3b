//go:build unit || e2e

package storetest

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lounge-pos/internal/domain/catalog"
	"lounge-pos/internal/domain/device"
	"lounge-pos/internal/domain/pricing"
	"lounge-pos/internal/domain/session"
	"lounge-pos/internal/infra/memstore"
	"lounge-pos/internal/pkg/money"
	"lounge-pos/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// DefaultSettings are the stock lounge rates: 20 single, 30 multi, 50 room.
func DefaultSettings(t *testing.T) pricing.Settings {
	t.Helper()
	settings, err := pricing.NewSettings(money.FromInt(20), money.FromInt(30), money.FromInt(50))
	require.NoError(t, err)
	return settings
}

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewStore returns an empty store priced with DefaultSettings.
func NewStore(t *testing.T) *memstore.Store {
	t.Helper()
	return memstore.NewStore(DefaultSettings(t), DiscardLogger())
}

func CreateDevice(t *testing.T, uow shared.UnitOfWork, d *device.Device) uuid.UUID {
	t.Helper()
	err := uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Devices().Create(ctx, d)
	})
	require.NoError(t, err)
	return d.ID()
}

func CreateDrink(t *testing.T, uow shared.UnitOfWork, drink *catalog.Drink) uuid.UUID {
	t.Helper()
	err := uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Drinks().Create(ctx, drink)
	})
	require.NoError(t, err)
	return drink.ID()
}

func AppendRecords(t *testing.T, uow shared.UnitOfWork, records ...*session.Record) {
	t.Helper()
	err := uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		for _, r := range records {
			if err := tx.Ledger().Append(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func LoadDevice(t *testing.T, uow shared.UnitOfWork, id uuid.UUID) *device.Device {
	t.Helper()
	var d *device.Device
	err := uow.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		d, err = tx.Devices().FindByID(ctx, id)
		return err
	})
	require.NoError(t, err)
	return d
}

func LoadDrink(t *testing.T, uow shared.UnitOfWork, id uuid.UUID) *catalog.Drink {
	t.Helper()
	var drink *catalog.Drink
	err := uow.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		drink, err = tx.Drinks().FindByID(ctx, id)
		return err
	})
	require.NoError(t, err)
	return drink
}

// Ledger returns every record in append order.
func Ledger(t *testing.T, uow shared.UnitOfWork) []*session.Record {
	t.Helper()
	var records []*session.Record
	err := uow.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		records, err = tx.Ledger().List(ctx)
		return err
	})
	require.NoError(t, err)
	return records
}
