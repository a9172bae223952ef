package analytics

import (
	"fmt"
	"sort"

	"github.com/avdeyev/kopilka/internal/common"
	"github.com/avdeyev/kopilka/internal/model"
)

// TopByAmount returns the n largest transactions by amount magnitude,
// descending, with ties kept in original order. Asking for more than the
// collection holds returns the whole collection.
func TopByAmount(transactions []model.Transaction, n int) ([]model.Transaction, error) {
	if n < 0 {
		return nil, fmt.Errorf("top count %d must be non-negative: %w", n, common.ErrInvalidArgument)
	}

	sorted := make([]model.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})

	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted, nil
}
