package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	w := NewWriter(dir)
	w.now = func() time.Time {
		return time.Date(2024, time.March, 15, 12, 30, 45, 0, time.UTC)
	}

	payload := map[string]decimal.Decimal{
		"Супермаркеты": decimal.RequireFromString("160.89"),
	}

	path, err := w.Write("cashback", payload)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report_cashback_20240315_123045.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "160.89", decoded["Супермаркеты"])

	// Cyrillic stays readable, not \u-escaped.
	assert.Contains(t, string(data), "Супермаркеты")
}

func TestWriter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deep")
	w := NewWriter(dir)

	_, err := w.Write("weekday", []string{"Monday"})
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
