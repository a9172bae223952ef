package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/avdeyev/kopilka/internal/common"
	"github.com/avdeyev/kopilka/internal/model"
	"github.com/avdeyev/kopilka/internal/parse"
	"github.com/avdeyev/kopilka/internal/report"
	"github.com/avdeyev/kopilka/internal/xlsx"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/viper"
)

// loadTransactions opens the configured statement workbook and runs the
// batch loader over it, showing row progress on stderr.
func loadTransactions(ctx context.Context) ([]model.Transaction, int, error) {
	path := viper.GetString("source.path")
	if path == "" {
		return nil, 0, common.NewUserError("no statement source configured, pass --source or set source.path", common.ErrMissingConfig)
	}

	reader, err := xlsx.Open(path)
	if err != nil {
		return nil, 0, common.NewUserError(fmt.Sprintf("cannot open statement %s", path), err)
	}
	defer func() { _ = reader.Close() }()

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Parsing statement rows..."),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	loader := &parse.Loader{
		Progress: func(_ int) { _ = bar.Add(1) },
	}

	transactions, skipped, err := loader.Load(ctx, reader)
	_ = bar.Finish()
	if err != nil {
		return nil, 0, err
	}

	return transactions, skipped, nil
}

// reportWriter builds the JSON report writer from configuration.
func reportWriter() *report.Writer {
	return report.NewWriter(viper.GetString("reports.dir"))
}

// formatTransaction renders one transaction as a single output line.
func formatTransaction(t model.Transaction) string {
	var sb strings.Builder
	sb.WriteString(t.OperationTime.Format(model.TimeLayout))
	sb.WriteString(fmt.Sprintf("  %10s %s", t.SignedAmount().StringFixed(2), t.Currency))
	if t.Category != "" {
		sb.WriteString("  " + t.Category)
	}
	if t.Description != "" {
		sb.WriteString("  " + t.Description)
	}
	return sb.String()
}
