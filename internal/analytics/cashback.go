// Package analytics provides pure queries over in-memory transaction
// collections. No function reads a wall clock or touches I/O; callers pass
// the reference time explicitly so results are reproducible.
package analytics

import (
	"sort"
	"time"

	"github.com/avdeyev/kopilka/internal/model"
	"github.com/shopspring/decimal"
)

// CategoryCashback is a category's accumulated cashback within a window.
type CategoryCashback struct {
	Category string
	Total    decimal.Decimal
}

// CashbackByCategory ranks categories by cashback earned in the given
// calendar month. Only transactions with positive cashback contribute, so
// a category never appears with a zero total. Ties keep first-encounter
// order.
func CashbackByCategory(transactions []model.Transaction, year int, month time.Month) []CategoryCashback {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, t := range transactions {
		if t.OperationTime.Year() != year || t.OperationTime.Month() != month {
			continue
		}
		if !t.Cashback.IsPositive() {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] = totals[t.Category].Add(t.Cashback)
	}

	ranking := make([]CategoryCashback, 0, len(order))
	for _, category := range order {
		ranking = append(ranking, CategoryCashback{Category: category, Total: totals[category]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Total.GreaterThan(ranking[j].Total)
	})

	return ranking
}

// TotalCashback sums the cashback of every given transaction.
func TotalCashback(transactions []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.Cashback)
	}
	return total
}
