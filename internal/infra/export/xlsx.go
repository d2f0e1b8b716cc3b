package export

import (
	"time"

	"lounge-pos/internal/pkg/errs"
	"lounge-pos/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName  = "History"
	timeLayout = "2006-01-02 15:04"
)

var header = []any{"Device", "Mode", "Start", "End", "Minutes", "Play", "Drinks", "Total"}

// XLSXExporter writes the ledger as a single-sheet workbook, one row per
// finished session. Amounts are numeric cells so the sheet can be summed.
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

var _ queries.HistoryExporter = (*XLSXExporter)(nil)

func (e *XLSXExporter) Export(entries []queries.HistoryEntry, loc *time.Location) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, errs.Wrap(err, "rename sheet")
	}

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, errs.Wrap(err, "write header")
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errs.Wrap(err, "create header style")
	}
	if err := f.SetRowStyle(sheetName, 1, 1, bold); err != nil {
		return nil, errs.Wrap(err, "style header")
	}

	for i, entry := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errs.Wrap(err, "resolve cell")
		}
		row := []any{
			entry.DeviceName,
			entry.Mode,
			entry.StartedAt.In(loc).Format(timeLayout),
			entry.EndedAt.In(loc).Format(timeLayout),
			entry.BilledMinutes,
			entry.PlayTotal.Round(2).InexactFloat64(),
			entry.DrinksTotal.Round(2).InexactFloat64(),
			entry.TotalAmount.Round(2).InexactFloat64(),
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, errs.Wrapf(err, "write row %d", i+2)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "D", 18); err != nil {
		return nil, errs.Wrap(err, "set column width")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errs.Wrap(err, "write workbook")
	}
	return buf.Bytes(), nil
}
