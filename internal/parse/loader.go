package parse

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/avdeyev/kopilka/internal/model"
)

// RowSource is the contract a statement reader exposes to the loader: a
// header set plus a sequence of raw rows in source order.
type RowSource interface {
	// Headers returns the source's column labels.
	Headers() []string
	// Next returns the next row. The second result is false once the
	// source is exhausted; a non-nil error means the source itself failed
	// and the load is over.
	Next() (model.RawRow, bool, error)
}

// SourceFormatError reports that a source cannot be loaded at all because
// it lacks mandatory columns.
type SourceFormatError struct {
	Missing []string
}

func (e *SourceFormatError) Error() string {
	return fmt.Sprintf("source is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// Loader reads every row of a source through ParseRow, collecting the
// survivors. A single bad row never aborts a load.
type Loader struct {
	// Progress, when set, is called after each consumed source row.
	Progress func(row int)
}

// Load drains the source in order. It returns the parsed transactions,
// the number of rows skipped over per-row errors, and a fatal error when
// the source itself cannot be read or lacks mandatory columns.
func (l *Loader) Load(ctx context.Context, src RowSource) ([]model.Transaction, int, error) {
	if err := checkHeaders(src.Headers()); err != nil {
		return nil, 0, err
	}

	var transactions []model.Transaction
	skipped := 0

	for row := 1; ; row++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, fmt.Errorf("load canceled: %w", err)
		}

		raw, ok, err := src.Next()
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read source row %d: %w", row, err)
		}
		if !ok {
			break
		}
		if l.Progress != nil {
			l.Progress(row)
		}

		txn, err := ParseRow(raw)
		if err != nil {
			slog.Warn("Skipping unparseable row",
				"row", row,
				"error", err)
			skipped++
			continue
		}
		transactions = append(transactions, txn)
	}

	slog.Info("Loaded statement rows",
		"transactions", len(transactions),
		"skipped", skipped)

	return transactions, skipped, nil
}

// Load is a convenience wrapper for a one-off load without progress
// reporting.
func Load(ctx context.Context, src RowSource) ([]model.Transaction, int, error) {
	return (&Loader{}).Load(ctx, src)
}

func checkHeaders(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[strings.TrimSpace(h)] = true
	}

	var missing []string
	for _, col := range model.RequiredColumns() {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SourceFormatError{Missing: missing}
	}
	return nil
}
