package queries

import (
	"context"
	"slices"
	"strings"
	"time"

	"lounge-pos/internal/domain/session"
	"lounge-pos/internal/pkg/clock"
	"lounge-pos/internal/pkg/errs"
	"lounge-pos/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCursor = errs.New("invalid cursor")
	ErrInvalidDate   = errs.New("invalid date")
	ErrExportFailed  = errs.New("history export failed")
)

//go:generate mockgen -source=history.go -destination=../../../tests/mock/queries/history_mock.go -package=queriesmock

type HistoryQueries interface {
	// ListHistory pages through the ledger newest first.
	ListHistory(ctx context.Context, limit int, after string) (*HistoryPage, error)
	// DailyStats summarizes one lounge-local day given as YYYY-MM-DD; empty means today.
	DailyStats(ctx context.Context, date string) (*DailyStatsView, error)
	ExportHistory(ctx context.Context) ([]byte, error)
}

// HistoryExporter renders ledger entries into a downloadable document.
type HistoryExporter interface {
	Export(entries []HistoryEntry, loc *time.Location) ([]byte, error)
}

type historyQueriesImpl struct {
	uow      shared.UnitOfWork
	exporter HistoryExporter
	lounge   shared.Lounge
	clock    clock.Clock
}

func NewHistoryQueries(uow shared.UnitOfWork, exporter HistoryExporter, lounge shared.Lounge, clk clock.Clock) HistoryQueries {
	return &historyQueriesImpl{
		uow:      uow,
		exporter: exporter,
		lounge:   lounge,
		clock:    clk,
	}
}

func (q *historyQueriesImpl) ListHistory(ctx context.Context, limit int, after string) (*HistoryPage, error) {
	limit = ValidateLimit(limit)

	var (
		afterTime time.Time
		afterID   uuid.UUID
		hasCursor bool
	)
	if after != "" {
		t, id, err := DecodeAfterCursor(after)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidCursor)
		}
		afterTime, afterID, hasCursor = t, id, true
	}

	records, err := q.newestFirst(ctx)
	if err != nil {
		return nil, err
	}

	page := &HistoryPage{Items: []HistoryEntry{}}
	for _, r := range records {
		if hasCursor && !isOlder(r, afterTime, afterID) {
			continue
		}
		if len(page.Items) == limit {
			last := page.Items[len(page.Items)-1]
			page.NextCursor = EncodeAfterCursor(last.EndedAt, last.ID)
			break
		}
		page.Items = append(page.Items, NewHistoryEntry(r))
	}
	return page, nil
}

func (q *historyQueriesImpl) DailyStats(ctx context.Context, date string) (*DailyStatsView, error) {
	day := q.clock.Now().In(q.lounge.Location)
	if date = strings.TrimSpace(date); date != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, date, q.lounge.Location)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidDate)
		}
		day = parsed
	}

	records, err := q.newestFirst(ctx)
	if err != nil {
		return nil, err
	}

	view := NewDailyStatsView(session.SummarizeDay(records, day, q.lounge.Location))
	return &view, nil
}

func (q *historyQueriesImpl) ExportHistory(ctx context.Context) ([]byte, error) {
	records, err := q.newestFirst(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, NewHistoryEntry(r))
	}

	out, err := q.exporter.Export(entries, q.lounge.Location)
	if err != nil {
		return nil, errs.Mark(err, ErrExportFailed)
	}
	return out, nil
}

func (q *historyQueriesImpl) newestFirst(ctx context.Context) ([]*session.Record, error) {
	var records []*session.Record
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		records, err = tx.Ledger().List(ctx)
		return err
	})
	if err != nil {
		return nil, errs.Wrap(err, "read ledger")
	}

	slices.SortStableFunc(records, func(a, b *session.Record) int {
		if c := b.EndedAt().Compare(a.EndedAt()); c != 0 {
			return c
		}
		return strings.Compare(b.ID().String(), a.ID().String())
	})
	return records, nil
}

func isOlder(r *session.Record, t time.Time, id uuid.UUID) bool {
	if c := r.EndedAt().Compare(t); c != 0 {
		return c < 0
	}
	return r.ID().String() < id.String()
}
