package analytics

import (
	"testing"

	"github.com/avdeyev/kopilka/internal/common"
	"github.com/avdeyev/kopilka/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvestmentRoundup(t *testing.T) {
	transactions := []model.Transaction{
		txn(t, "2024-01-15 10:00:00", "-123.0", "", "", ""),
		txn(t, "2024-01-20 10:00:00", "-477.0", "", "", ""),
	}

	total, err := InvestmentRoundup("2024-01", transactions, 100)
	require.NoError(t, err)
	// (200-123) + (500-477) = 77 + 23
	assert.Equal(t, "100.00", total.StringFixed(2))
}

func TestInvestmentRoundup_ExactMultipleContributesNothing(t *testing.T) {
	transactions := []model.Transaction{
		txn(t, "2024-01-15 10:00:00", "-200", "", "", ""),
		txn(t, "2024-01-16 10:00:00", "-50", "", "", ""),
	}

	total, err := InvestmentRoundup("2024-01", transactions, 50)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestInvestmentRoundup_FiltersByMonth(t *testing.T) {
	transactions := []model.Transaction{
		txn(t, "2024-01-15 10:00:00", "-91", "", "", ""),
		txn(t, "2024-02-15 10:00:00", "-91", "", "", ""),
		txn(t, "2023-01-15 10:00:00", "-91", "", "", ""),
	}

	total, err := InvestmentRoundup("2024-01", transactions, 10)
	require.NoError(t, err)
	assert.Equal(t, "9.00", total.StringFixed(2))
}

func TestInvestmentRoundup_FractionalAmounts(t *testing.T) {
	transactions := []model.Transaction{
		txn(t, "2021-12-31 16:44:00", "-160.89", "", "", ""),
	}

	total, err := InvestmentRoundup("2021-12", transactions, 50)
	require.NoError(t, err)
	assert.Equal(t, "39.11", total.StringFixed(2))
}

func TestInvestmentRoundup_InvalidArguments(t *testing.T) {
	tests := []struct {
		name  string
		month string
		step  int64
	}{
		{name: "bad month format", month: "202401", step: 50},
		{name: "month out of range", month: "2024-13", step: 50},
		{name: "month with day", month: "2024-01-15", step: 50},
		{name: "step not allowed", month: "2024-01", step: 25},
		{name: "zero step", month: "2024-01", step: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InvestmentRoundup(tt.month, nil, tt.step)
			assert.ErrorIs(t, err, common.ErrInvalidArgument)
		})
	}
}

func TestRoundup_Monotonic(t *testing.T) {
	// 0 <= roundup(a, step) < step, and zero exactly when a is a multiple.
	for _, step := range RoundupSteps {
		stepDec := decimal.NewFromInt(step)
		for cents := int64(0); cents <= 25000; cents += 137 {
			amount := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
			r := Roundup(amount, stepDec)

			assert.False(t, r.IsNegative(), "amount %s step %d", amount, step)
			assert.True(t, r.LessThan(stepDec), "amount %s step %d", amount, step)

			isMultiple := amount.Mod(stepDec).IsZero()
			assert.Equal(t, isMultiple, r.IsZero(), "amount %s step %d", amount, step)
		}
	}
}
