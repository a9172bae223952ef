package analytics

import (
	"testing"

	"github.com/avdeyev/kopilka/internal/common"
	"github.com/avdeyev/kopilka/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		moment string
		want   string
	}{
		{moment: "2024-01-15 05:00:00", want: "Доброе утро"},
		{moment: "2024-01-15 11:59:59", want: "Доброе утро"},
		{moment: "2024-01-15 12:00:00", want: "Добрый день"},
		{moment: "2024-01-15 16:59:00", want: "Добрый день"},
		{moment: "2024-01-15 17:00:00", want: "Добрый вечер"},
		{moment: "2024-01-15 22:59:00", want: "Добрый вечер"},
		{moment: "2024-01-15 23:00:00", want: "Доброй ночи"},
		{moment: "2024-01-15 03:00:00", want: "Доброй ночи"},
	}

	for _, tt := range tests {
		t.Run(tt.moment, func(t *testing.T) {
			assert.Equal(t, tt.want, Greeting(ref(t, tt.moment)))
		})
	}
}

func TestMonthSummary(t *testing.T) {
	transactions := []model.Transaction{
		txn(t, "2024-01-05 10:00:00", "-1000", "Супермаркеты", "Пятерочка", "50"),
		txn(t, "2024-01-10 10:00:00", "-500", "Такси", "Яндекс Такси", "25"),
		txn(t, "2024-01-12 10:00:00", "30000", "Пополнения", "Зарплата", ""),
		txn(t, "2023-12-31 23:00:00", "-999", "Рестораны", "прошлый месяц", "10"),
		txn(t, "2024-01-20 10:00:00", "-888", "Рестораны", "после опорной точки", "10"),
	}

	summary := MonthSummary(transactions, ref(t, "2024-01-15 12:00:00"))

	assert.Equal(t, "Добрый день", summary.Greeting)
	assert.Equal(t, "1500.00", summary.TotalSpent.StringFixed(2))
	assert.Equal(t, "75.00", summary.TotalCashback.StringFixed(2))
	require.Len(t, summary.Top, 3, "only the month-to-date window is ranked")
	assert.Equal(t, "Зарплата", summary.Top[0].Description)
}

func TestPeriodSummary_Month(t *testing.T) {
	transactions := []model.Transaction{
		txn(t, "2024-01-05 10:00:00", "-1000", "Супермаркеты", "", ""),
		txn(t, "2024-01-06 10:00:00", "-500", "Такси", "", ""),
		txn(t, "2024-01-07 10:00:00", "30000", "Пополнения", "", ""),
		txn(t, "2023-12-30 10:00:00", "-7777", "Рестораны", "", ""),
	}

	report, err := PeriodSummary(transactions, ref(t, "2024-01-15 12:00:00"), PeriodMonth)
	require.NoError(t, err)

	assert.Equal(t, "1500", report.Expenses.Total.String())
	require.Len(t, report.Expenses.Main, 2)
	assert.Equal(t, "Супермаркеты", report.Expenses.Main[0].Category)
	assert.True(t, report.Expenses.Other.IsZero())
	assert.Equal(t, "30000", report.Income.Total.String())
	require.Len(t, report.Income.Categories, 1)
	assert.Equal(t, "Пополнения", report.Income.Categories[0].Category)
}

func TestPeriodSummary_FoldsTailCategoriesIntoOther(t *testing.T) {
	var transactions []model.Transaction
	categories := []string{"А", "Б", "В", "Г", "Д", "Е", "Ж", "З", "И"}
	for i, c := range categories {
		amount := "-100"
		if i == 0 {
			amount = "-1000"
		}
		transactions = append(transactions, txn(t, "2024-01-05 10:00:00", amount, c, "", ""))
	}

	report, err := PeriodSummary(transactions, ref(t, "2024-01-15 12:00:00"), PeriodMonth)
	require.NoError(t, err)

	require.Len(t, report.Expenses.Main, 7)
	assert.Equal(t, "А", report.Expenses.Main[0].Category)
	assert.Equal(t, "200", report.Expenses.Other.String(), "two tail categories folded")
	assert.Equal(t, "1800", report.Expenses.Total.String())
}

func TestPeriodSummary_WeekStartsMonday(t *testing.T) {
	transactions := []model.Transaction{
		txn(t, "2024-03-11 10:00:00", "-100", "Такси", "понедельник", ""),
		txn(t, "2024-03-10 10:00:00", "-100", "Такси", "воскресенье до недели", ""),
	}

	// 2024-03-13 is a Wednesday; the week began Monday the 11th.
	report, err := PeriodSummary(transactions, ref(t, "2024-03-13 12:00:00"), PeriodWeek)
	require.NoError(t, err)

	assert.Equal(t, "100", report.Expenses.Total.String())
}

func TestPeriodSummary_AllIncludesEverything(t *testing.T) {
	transactions := []model.Transaction{
		txn(t, "1999-07-01 10:00:00", "-100", "Такси", "", ""),
		txn(t, "2024-03-11 10:00:00", "-100", "Такси", "", ""),
	}

	report, err := PeriodSummary(transactions, ref(t, "2024-03-13 12:00:00"), PeriodAll)
	require.NoError(t, err)
	assert.Equal(t, "200", report.Expenses.Total.String())
}

func TestPeriodSummary_InvalidPeriod(t *testing.T) {
	_, err := PeriodSummary(nil, ref(t, "2024-03-13 12:00:00"), Period("Q"))
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}
