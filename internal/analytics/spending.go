package analytics

import (
	"sort"
	"time"

	"github.com/avdeyev/kopilka/internal/model"
	"github.com/shopspring/decimal"
)

// MonthSpend is one calendar month's spend total, keyed "YYYY-MM".
type MonthSpend struct {
	Month string
	Total decimal.Decimal
}

// WeekdaySpend is one weekday's average spend.
type WeekdaySpend struct {
	Weekday string
	Average decimal.Decimal
}

// WorkdayReport is the two-way workday/weekend average spend split. Both
// buckets are always present, zero when the window holds no matching
// spends.
type WorkdayReport struct {
	Workday decimal.Decimal
	Weekend decimal.Decimal
}

// CategoryAmount is a category paired with an accumulated amount.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// CategorySpending totals the debit spend of one category for each of the
// three calendar months trailing the reference date, most recent first.
// Months with no matching spend report zero rather than disappearing.
func CategorySpending(transactions []model.Transaction, category string, ref time.Time) []MonthSpend {
	report := make([]MonthSpend, 0, 3)
	firstOfMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())

	for i := 0; i < 3; i++ {
		month := firstOfMonth.AddDate(0, -i, 0).Format("2006-01")
		total := decimal.Zero
		for _, t := range transactions {
			if !t.IsDebit() || t.Category != category {
				continue
			}
			if t.OperationTime.Format("2006-01") != month {
				continue
			}
			total = total.Add(t.Amount)
		}
		report = append(report, MonthSpend{Month: month, Total: total.RoundBank(2)})
	}

	return report
}

// WeekdaySpending averages debit spend per weekday over the three calendar
// months trailing the reference date. All seven buckets are always
// reported, Monday through Sunday, zero when empty.
func WeekdaySpending(transactions []model.Transaction, ref time.Time) []WeekdaySpend {
	var totals [7]decimal.Decimal
	var counts [7]int64

	start := ref.AddDate(0, -3, 0)
	for _, t := range transactions {
		if !t.IsDebit() || t.OperationTime.Before(start) || t.OperationTime.After(ref) {
			continue
		}
		idx := mondayIndex(t.OperationTime.Weekday())
		totals[idx] = totals[idx].Add(t.Amount)
		counts[idx]++
	}

	report := make([]WeekdaySpend, 0, 7)
	for i := 0; i < 7; i++ {
		average := decimal.Zero
		if counts[i] > 0 {
			average = totals[i].Div(decimal.NewFromInt(counts[i])).RoundBank(2)
		}
		// Weekday labels run Monday..Sunday.
		weekday := time.Weekday((i + 1) % 7)
		report = append(report, WeekdaySpend{Weekday: weekday.String(), Average: average})
	}

	return report
}

// WorkdaySpending averages debit spend across workdays versus weekends
// over the three calendar months trailing the reference date.
func WorkdaySpending(transactions []model.Transaction, ref time.Time) WorkdayReport {
	var totals [2]decimal.Decimal
	var counts [2]int64

	start := ref.AddDate(0, -3, 0)
	for _, t := range transactions {
		if !t.IsDebit() || t.OperationTime.Before(start) || t.OperationTime.After(ref) {
			continue
		}
		idx := 0
		if mondayIndex(t.OperationTime.Weekday()) >= 5 {
			idx = 1
		}
		totals[idx] = totals[idx].Add(t.Amount)
		counts[idx]++
	}

	report := WorkdayReport{Workday: decimal.Zero, Weekend: decimal.Zero}
	if counts[0] > 0 {
		report.Workday = totals[0].Div(decimal.NewFromInt(counts[0])).RoundBank(2)
	}
	if counts[1] > 0 {
		report.Weekend = totals[1].Div(decimal.NewFromInt(counts[1])).RoundBank(2)
	}
	return report
}

// SpendingByCategory totals debit spend per category over the whole
// collection, largest first, ties in first-encounter order.
func SpendingByCategory(transactions []model.Transaction) []CategoryAmount {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, t := range transactions {
		if !t.IsDebit() {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}

	report := make([]CategoryAmount, 0, len(order))
	for _, category := range order {
		report = append(report, CategoryAmount{Category: category, Amount: totals[category]})
	}
	sort.SliceStable(report, func(i, j int) bool {
		return report[i].Amount.GreaterThan(report[j].Amount)
	})

	return report
}

// mondayIndex maps time.Weekday (Sunday = 0) onto a Monday-first index,
// so indexes 5 and 6 are the weekend.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
