package shared

import (
	"context"

	"lounge-pos/internal/domain/catalog"
	"lounge-pos/internal/domain/device"
	"lounge-pos/internal/domain/pricing"
	"lounge-pos/internal/domain/session"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

// UnitOfWork is the single owner of lounge state. Every mutation goes through
// Within, which applies all of fn's writes together or none of them.
type UnitOfWork interface {
	// Within: exclusive read-write transaction
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent snapshot; writes fail with a READ_ONLY error
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Devices() DeviceRepository
	Drinks() DrinkRepository
	Ledger() LedgerRepository
	Settings() SettingsRepository
}

// Repositories hand out working copies. Changes are only visible to other
// transactions after Save and a successful commit.
type DeviceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*device.Device, error)
	List(ctx context.Context) ([]*device.Device, error)
	Create(ctx context.Context, d *device.Device) error
	Save(ctx context.Context, d *device.Device) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DrinkRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Drink, error)
	List(ctx context.Context) ([]*catalog.Drink, error)
	Create(ctx context.Context, d *catalog.Drink) error
	Save(ctx context.Context, d *catalog.Drink) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// LedgerRepository is append-only.
type LedgerRepository interface {
	Append(ctx context.Context, r *session.Record) error
	List(ctx context.Context) ([]*session.Record, error)
}

type SettingsRepository interface {
	Get(ctx context.Context) (pricing.Settings, error)
	Save(ctx context.Context, s pricing.Settings) error
}
