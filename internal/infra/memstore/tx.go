package memstore

import (
	"context"

	"lounge-pos/internal/domain/catalog"
	"lounge-pos/internal/domain/device"
	"lounge-pos/internal/domain/pricing"
	"lounge-pos/internal/domain/session"
	"lounge-pos/internal/infra"
	"lounge-pos/internal/usecase/shared"

	"github.com/google/uuid"
)

type memTx struct {
	store    *Store
	readOnly bool

	devices *staged[*device.Device]
	drinks  *staged[*catalog.Drink]
	records []*session.Record

	settings      pricing.Settings
	settingsDirty bool
}

func (t *memTx) Devices() shared.DeviceRepository    { return deviceRepo{t} }
func (t *memTx) Drinks() shared.DrinkRepository      { return drinkRepo{t} }
func (t *memTx) Ledger() shared.LedgerRepository     { return ledgerRepo{t} }
func (t *memTx) Settings() shared.SettingsRepository { return settingsRepo{t} }

func (t *memTx) ensureWritable(op string) error {
	if t.readOnly {
		return infra.WrapRepoErr(t.store.logger, infra.KindReadOnly, op+" in read-only transaction", nil)
	}
	return nil
}

func (t *memTx) notFound(msg string) error {
	return infra.WrapRepoErr(t.store.logger, infra.KindNotFound, msg, nil)
}

func (t *memTx) commit() {
	if t.devices.dirty() {
		t.devices.commit()
	}
	if t.drinks.dirty() {
		t.drinks.commit()
	}
	t.store.ledger = append(t.store.ledger, t.records...)
	if t.settingsDirty {
		t.store.settings = t.settings
	}
}

type deviceRepo struct{ tx *memTx }

func (r deviceRepo) FindByID(ctx context.Context, id uuid.UUID) (*device.Device, error) {
	d, ok := r.tx.devices.get(id)
	if !ok {
		return nil, r.tx.notFound("device not found")
	}
	return d, nil
}

func (r deviceRepo) List(ctx context.Context) ([]*device.Device, error) {
	return r.tx.devices.list(), nil
}

func (r deviceRepo) Create(ctx context.Context, d *device.Device) error {
	if err := r.tx.ensureWritable("create device"); err != nil {
		return err
	}
	if r.tx.devices.exists(d.ID()) {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindDuplicateKey, "device already exists", nil)
	}
	r.tx.devices.create(d)
	return nil
}

func (r deviceRepo) Save(ctx context.Context, d *device.Device) error {
	if err := r.tx.ensureWritable("save device"); err != nil {
		return err
	}
	if !r.tx.devices.exists(d.ID()) {
		return r.tx.notFound("device not found")
	}
	r.tx.devices.save(d)
	return nil
}

func (r deviceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.tx.ensureWritable("delete device"); err != nil {
		return err
	}
	if !r.tx.devices.exists(id) {
		return r.tx.notFound("device not found")
	}
	r.tx.devices.remove(id)
	return nil
}

type drinkRepo struct{ tx *memTx }

func (r drinkRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Drink, error) {
	d, ok := r.tx.drinks.get(id)
	if !ok {
		return nil, r.tx.notFound("drink not found")
	}
	return d, nil
}

func (r drinkRepo) List(ctx context.Context) ([]*catalog.Drink, error) {
	return r.tx.drinks.list(), nil
}

func (r drinkRepo) Create(ctx context.Context, d *catalog.Drink) error {
	if err := r.tx.ensureWritable("create drink"); err != nil {
		return err
	}
	if r.tx.drinks.exists(d.ID()) {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindDuplicateKey, "drink already exists", nil)
	}
	r.tx.drinks.create(d)
	return nil
}

func (r drinkRepo) Save(ctx context.Context, d *catalog.Drink) error {
	if err := r.tx.ensureWritable("save drink"); err != nil {
		return err
	}
	if !r.tx.drinks.exists(d.ID()) {
		return r.tx.notFound("drink not found")
	}
	r.tx.drinks.save(d)
	return nil
}

func (r drinkRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.tx.ensureWritable("delete drink"); err != nil {
		return err
	}
	if !r.tx.drinks.exists(id) {
		return r.tx.notFound("drink not found")
	}
	r.tx.drinks.remove(id)
	return nil
}

type ledgerRepo struct{ tx *memTx }

func (r ledgerRepo) Append(ctx context.Context, rec *session.Record) error {
	if err := r.tx.ensureWritable("append record"); err != nil {
		return err
	}
	r.tx.records = append(r.tx.records, rec)
	return nil
}

// List returns records in the order they were appended.
func (r ledgerRepo) List(ctx context.Context) ([]*session.Record, error) {
	out := make([]*session.Record, 0, len(r.tx.store.ledger)+len(r.tx.records))
	out = append(out, r.tx.store.ledger...)
	out = append(out, r.tx.records...)
	return out, nil
}

type settingsRepo struct{ tx *memTx }

func (r settingsRepo) Get(ctx context.Context) (pricing.Settings, error) {
	return r.tx.settings, nil
}

func (r settingsRepo) Save(ctx context.Context, s pricing.Settings) error {
	if err := r.tx.ensureWritable("save settings"); err != nil {
		return err
	}
	r.tx.settings = s
	r.tx.settingsDirty = true
	return nil
}
