package memstore

import (
	"context"
	"log/slog"
	"sync"

	"lounge-pos/internal/domain/catalog"
	"lounge-pos/internal/domain/device"
	"lounge-pos/internal/domain/pricing"
	"lounge-pos/internal/domain/session"
	"lounge-pos/internal/infra"
	"lounge-pos/internal/usecase/shared"
)

// Store is the process-wide state container. A read-write transaction holds
// the write lock for its whole lifetime so compound operations such as
// taking stock and appending to a basket commit as one step.
type Store struct {
	mu       sync.RWMutex
	devices  *table[*device.Device]
	drinks   *table[*catalog.Drink]
	ledger   []*session.Record
	settings pricing.Settings
	logger   *slog.Logger
}

func NewStore(settings pricing.Settings, logger *slog.Logger) *Store {
	return &Store{
		devices:  newTable[*device.Device](),
		drinks:   newTable[*catalog.Drink](),
		settings: settings,
		logger:   logger,
	}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindTxFailure, "transaction not started", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.begin(false)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindTxFailure, "transaction discarded", err)
	}

	tx.commit()
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindTxFailure, "transaction not started", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(ctx, s.begin(true))
}

func (s *Store) begin(readOnly bool) *memTx {
	return &memTx{
		store:    s,
		readOnly: readOnly,
		devices:  newStaged(s.devices),
		drinks:   newStaged(s.drinks),
		settings: s.settings,
	}
}
