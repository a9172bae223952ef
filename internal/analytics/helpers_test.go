package analytics

import (
	"testing"
	"time"

	"github.com/avdeyev/kopilka/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// txn builds a test transaction from a signed amount: negative spends
// become debits, mirroring how the parser derives direction.
func txn(t *testing.T, operationTime, amount, category, description, cashback string) model.Transaction {
	t.Helper()

	ts, err := time.Parse("2006-01-02 15:04:05", operationTime)
	require.NoError(t, err)

	signed, err := decimal.NewFromString(amount)
	require.NoError(t, err)
	direction := model.DirectionCredit
	if signed.IsNegative() {
		direction = model.DirectionDebit
	}

	cb := decimal.Zero
	if cashback != "" {
		cb, err = decimal.NewFromString(cashback)
		require.NoError(t, err)
	}

	return model.Transaction{
		OperationTime: ts,
		PaymentDate:   time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC),
		Status:        "OK",
		Amount:        signed.Abs(),
		Direction:     direction,
		Currency:      "RUB",
		Cashback:      cb,
		Category:      category,
		Description:   description,
	}
}

func sampleTransactions(t *testing.T) []model.Transaction {
	t.Helper()
	return []model.Transaction{
		txn(t, "2024-01-15 12:00:00", "-1000.0", "Супермаркеты", "Пятерочка", "50.0"),
		txn(t, "2024-01-20 18:30:00", "-500.0", "Такси", "Яндекс Такси +7 921 123-45-67", "25.0"),
		txn(t, "2024-02-01 09:00:00", "-200.0", "Переводы", "Иван С.", ""),
	}
}
