package analytics

import (
	"fmt"
	"time"

	"github.com/avdeyev/kopilka/internal/common"
	"github.com/avdeyev/kopilka/internal/model"
	"github.com/shopspring/decimal"
)

// Summary is the month-to-date overview shown on the home screen.
type Summary struct {
	Greeting      string
	TotalSpent    decimal.Decimal
	TotalCashback decimal.Decimal
	Top           []model.Transaction
}

// Period selects the window of a PeriodSummary.
type Period string

// Windows supported by PeriodSummary.
const (
	PeriodWeek  Period = "W"
	PeriodMonth Period = "M"
	PeriodYear  Period = "Y"
	PeriodAll   Period = "ALL"
)

// ExpenseBreakdown is the spend side of a period report: the overall
// total, the top categories, and everything else folded into Other.
type ExpenseBreakdown struct {
	Total decimal.Decimal
	Main  []CategoryAmount
	Other decimal.Decimal
}

// IncomeBreakdown is the income side of a period report.
type IncomeBreakdown struct {
	Total      decimal.Decimal
	Categories []CategoryAmount
}

// PeriodReport summarizes expenses and income over one period window.
type PeriodReport struct {
	Expenses ExpenseBreakdown
	Income   IncomeBreakdown
}

// mainCategoryLimit caps how many expense categories a period report
// names before folding the rest into Other.
const mainCategoryLimit = 7

// Greeting returns the salutation matching the hour of the given time.
func Greeting(t time.Time) string {
	switch hour := t.Hour(); {
	case hour >= 5 && hour < 12:
		return "Доброе утро"
	case hour >= 12 && hour < 17:
		return "Добрый день"
	case hour >= 17 && hour < 23:
		return "Добрый вечер"
	default:
		return "Доброй ночи"
	}
}

// MonthSummary builds the month-to-date overview: from the first day of
// the reference month through the reference moment itself.
func MonthSummary(transactions []model.Transaction, ref time.Time) Summary {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	window := filterWindow(transactions, start, ref)

	totalSpent := decimal.Zero
	for _, t := range window {
		if t.IsDebit() {
			totalSpent = totalSpent.Add(t.Amount)
		}
	}

	// n is non-negative here, so TopByAmount cannot fail.
	top, _ := TopByAmount(window, 5)

	return Summary{
		Greeting:      Greeting(ref),
		TotalSpent:    totalSpent,
		TotalCashback: TotalCashback(window),
		Top:           top,
	}
}

// PeriodSummary breaks down expenses and income over the window ending at
// the reference moment: the current week (from Monday), month, year, or
// everything. Amounts are rounded to whole units half-to-even.
func PeriodSummary(transactions []model.Transaction, ref time.Time, period Period) (PeriodReport, error) {
	start, err := periodStart(ref, period)
	if err != nil {
		return PeriodReport{}, err
	}
	window := filterWindow(transactions, start, ref)

	var expenses, income []model.Transaction
	for _, t := range window {
		if t.IsDebit() {
			expenses = append(expenses, t)
		} else {
			income = append(income, t)
		}
	}

	report := PeriodReport{
		Expenses: ExpenseBreakdown{Total: decimal.Zero, Other: decimal.Zero},
		Income:   IncomeBreakdown{Total: decimal.Zero},
	}

	byCategory := SpendingByCategory(expenses)
	for _, c := range byCategory {
		report.Expenses.Total = report.Expenses.Total.Add(c.Amount)
	}
	for i, c := range byCategory {
		if i < mainCategoryLimit {
			report.Expenses.Main = append(report.Expenses.Main,
				CategoryAmount{Category: c.Category, Amount: c.Amount.RoundBank(0)})
		} else {
			report.Expenses.Other = report.Expenses.Other.Add(c.Amount)
		}
	}
	report.Expenses.Total = report.Expenses.Total.RoundBank(0)
	report.Expenses.Other = report.Expenses.Other.RoundBank(0)

	incomeTotals := make(map[string]decimal.Decimal)
	var incomeOrder []string
	for _, t := range income {
		report.Income.Total = report.Income.Total.Add(t.Amount)
		if _, seen := incomeTotals[t.Category]; !seen {
			incomeOrder = append(incomeOrder, t.Category)
		}
		incomeTotals[t.Category] = incomeTotals[t.Category].Add(t.Amount)
	}
	for _, category := range incomeOrder {
		report.Income.Categories = append(report.Income.Categories,
			CategoryAmount{Category: category, Amount: incomeTotals[category].RoundBank(0)})
	}
	report.Income.Total = report.Income.Total.RoundBank(0)

	return report, nil
}

func periodStart(ref time.Time, period Period) (time.Time, error) {
	switch period {
	case PeriodWeek:
		monday := ref.AddDate(0, 0, -mondayIndex(ref.Weekday()))
		return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, ref.Location()), nil
	case PeriodMonth:
		return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()), nil
	case PeriodYear:
		return time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location()), nil
	case PeriodAll:
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("period %q must be one of W, M, Y, ALL: %w", period, common.ErrInvalidArgument)
	}
}

func filterWindow(transactions []model.Transaction, start, end time.Time) []model.Transaction {
	window := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.OperationTime.Before(start) || t.OperationTime.After(end) {
			continue
		}
		window = append(window, t)
	}
	return window
}
