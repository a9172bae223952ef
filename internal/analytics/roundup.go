package analytics

import (
	"fmt"
	"regexp"

	"github.com/avdeyev/kopilka/internal/common"
	"github.com/avdeyev/kopilka/internal/model"
	"github.com/shopspring/decimal"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// RoundupSteps are the allowed rounding steps for the savings simulation.
var RoundupSteps = []int64{10, 50, 100}

// InvestmentRoundup computes the total that would land in a savings jar if
// every spend of the given "YYYY-MM" month were rounded up to the next
// multiple of step. An amount already divisible by step contributes
// nothing. The result is rounded to 2 decimal places half-to-even.
func InvestmentRoundup(month string, transactions []model.Transaction, step int64) (decimal.Decimal, error) {
	if !monthPattern.MatchString(month) {
		return decimal.Zero, fmt.Errorf("month %q must match YYYY-MM: %w", month, common.ErrInvalidArgument)
	}
	if !validStep(step) {
		return decimal.Zero, fmt.Errorf("step %d must be one of %v: %w", step, RoundupSteps, common.ErrInvalidArgument)
	}

	stepDec := decimal.NewFromInt(step)
	total := decimal.Zero

	for _, t := range transactions {
		if t.OperationTime.Format("2006-01") != month {
			continue
		}
		total = total.Add(Roundup(t.Amount, stepDec))
	}

	return total.RoundBank(2), nil
}

// Roundup is the distance from a non-negative amount up to the next
// multiple of step; zero when the amount is already a multiple.
func Roundup(amount, step decimal.Decimal) decimal.Decimal {
	remainder := amount.Mod(step)
	if remainder.IsZero() {
		return decimal.Zero
	}
	return step.Sub(remainder)
}

func validStep(step int64) bool {
	for _, s := range RoundupSteps {
		if step == s {
			return true
		}
	}
	return false
}
