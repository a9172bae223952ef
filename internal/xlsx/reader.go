// Package xlsx reads bank statement workbooks into raw statement rows.
package xlsx

import (
	"fmt"
	"strings"

	"github.com/avdeyev/kopilka/internal/model"
	"github.com/xuri/excelize/v2"
)

// Reader streams the first sheet of an xlsx statement as raw rows. The
// first sheet row is the header; every later row maps cells to columns by
// header label. Implements the loader's RowSource.
type Reader struct {
	file    *excelize.File
	rows    *excelize.Rows
	columns map[string]int
	headers []string
}

// Open opens a statement workbook and positions the reader after its
// header row.
func Open(path string) (*Reader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}

	sheet := f.GetSheetName(0)
	rows, err := f.Rows(sheet)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	if !rows.Next() {
		_ = rows.Close()
		_ = f.Close()
		return nil, fmt.Errorf("workbook %s has no header row", path)
	}
	headers, err := rows.Columns()
	if err != nil {
		_ = rows.Close()
		_ = f.Close()
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	columns := make(map[string]int, len(headers))
	for i, h := range headers {
		columns[strings.TrimSpace(h)] = i
	}

	return &Reader{
		file:    f,
		rows:    rows,
		columns: columns,
		headers: headers,
	}, nil
}

// Headers returns the workbook's header labels.
func (r *Reader) Headers() []string {
	return r.headers
}

// Next returns the next statement row, false once the sheet is exhausted.
func (r *Reader) Next() (model.RawRow, bool, error) {
	if !r.rows.Next() {
		if err := r.rows.Error(); err != nil {
			return model.RawRow{}, false, fmt.Errorf("failed to advance row: %w", err)
		}
		return model.RawRow{}, false, nil
	}

	cells, err := r.rows.Columns()
	if err != nil {
		return model.RawRow{}, false, fmt.Errorf("failed to read row cells: %w", err)
	}

	cell := func(label string) string {
		idx, ok := r.columns[label]
		if !ok || idx >= len(cells) {
			return ""
		}
		return cells[idx]
	}

	return model.RawRow{
		OperationTime:     cell(model.ColOperationTime),
		PaymentDate:       cell(model.ColPaymentDate),
		CardNumber:        cell(model.ColCardNumber),
		Status:            cell(model.ColStatus),
		Amount:            cell(model.ColAmount),
		Currency:          cell(model.ColCurrency),
		Cashback:          cell(model.ColCashback),
		Category:          cell(model.ColCategory),
		MCC:               cell(model.ColMCC),
		Description:       cell(model.ColDescription),
		BonusPoints:       cell(model.ColBonusPoints),
		InvestmentRoundup: cell(model.ColInvestmentRoundup),
	}, true, nil
}

// Close releases the underlying workbook.
func (r *Reader) Close() error {
	rowsErr := r.rows.Close()
	if err := r.file.Close(); err != nil {
		return err
	}
	return rowsErr
}
