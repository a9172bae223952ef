package analytics

import (
	"testing"

	"github.com/avdeyev/kopilka/internal/common"
	"github.com/avdeyev/kopilka/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopByAmount(t *testing.T) {
	transactions := []model.Transaction{
		txn(t, "2024-01-01 10:00:00", "-100", "", "small", ""),
		txn(t, "2024-01-02 10:00:00", "900", "", "income", ""),
		txn(t, "2024-01-03 10:00:00", "-500", "", "medium", ""),
	}

	top, err := TopByAmount(transactions, 2)
	require.NoError(t, err)

	require.Len(t, top, 2)
	assert.Equal(t, "income", top[0].Description, "magnitude ranks regardless of direction")
	assert.Equal(t, "medium", top[1].Description)
}

func TestTopByAmount_StableTies(t *testing.T) {
	transactions := []model.Transaction{
		txn(t, "2024-01-01 10:00:00", "-250", "", "first", ""),
		txn(t, "2024-01-02 10:00:00", "-250", "", "second", ""),
		txn(t, "2024-01-03 10:00:00", "-250", "", "third", ""),
	}

	top, err := TopByAmount(transactions, 3)
	require.NoError(t, err)

	assert.Equal(t, "first", top[0].Description)
	assert.Equal(t, "second", top[1].Description)
	assert.Equal(t, "third", top[2].Description)
}

func TestTopByAmount_NLargerThanCollection(t *testing.T) {
	transactions := sampleTransactions(t)

	top, err := TopByAmount(transactions, 100)
	require.NoError(t, err)
	assert.Len(t, top, len(transactions))
}

func TestTopByAmount_ZeroAndNegative(t *testing.T) {
	transactions := sampleTransactions(t)

	top, err := TopByAmount(transactions, 0)
	require.NoError(t, err)
	assert.Empty(t, top)

	_, err = TopByAmount(transactions, -1)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestTopByAmount_DoesNotMutateInput(t *testing.T) {
	transactions := []model.Transaction{
		txn(t, "2024-01-01 10:00:00", "-100", "", "small", ""),
		txn(t, "2024-01-02 10:00:00", "-900", "", "large", ""),
	}

	_, err := TopByAmount(transactions, 1)
	require.NoError(t, err)

	assert.Equal(t, "small", transactions[0].Description, "input order untouched")
}
