// Package parse turns raw statement rows into validated transactions.
package parse

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avdeyev/kopilka/internal/model"
	"github.com/shopspring/decimal"
)

// RowError reports that a mandatory field of one row is missing or
// unparseable. The batch loader recovers from it; callers parsing single
// rows see it directly.
type RowError struct {
	Err   error
	Field string
	Value string
}

func (e *RowError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("field %q: bad value %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("field %q: bad value %q", e.Field, e.Value)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// isBlank reports whether a cell should be treated as absent. Spreadsheet
// libraries surface missing numeric cells inconsistently: sometimes as an
// empty string, sometimes as the literal text "nan".
func isBlank(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, "nan")
}

// parseDecimal parses a statement decimal cell, normalizing the Russian
// locale's comma separator to a dot first.
func parseDecimal(s string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return decimal.NewFromString(normalized)
}

// optionalDecimal handles decimal cells that may be absent. Absence yields
// zero; a present but garbled value is a hard error, never a silent zero.
func optionalDecimal(field, value string) (decimal.Decimal, error) {
	if isBlank(value) {
		return decimal.Zero, nil
	}
	d, err := parseDecimal(value)
	if err != nil {
		return decimal.Zero, &RowError{Field: field, Value: value, Err: err}
	}
	return d, nil
}

// parseMCC coerces an MCC cell to an integer via a numeric round-trip, so
// spreadsheet floats like "5411.0" survive. Anything non-numeric, blank or
// negative means "no MCC", not an error.
func parseMCC(value string) *int {
	if isBlank(value) {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || f < 0 {
		return nil
	}
	mcc := int(f)
	return &mcc
}

// optionalString returns a trimmed cell value, mapping absent-sentinels to
// the given default.
func optionalString(value, def string) string {
	if isBlank(value) {
		return def
	}
	return strings.TrimSpace(value)
}

// ParseRow converts one raw statement row into a validated Transaction.
// The operation time and the amount are mandatory: when either is missing
// or unparseable the whole row is rejected with a *RowError. Every other
// field degrades to its documented default when absent.
func ParseRow(raw model.RawRow) (model.Transaction, error) {
	if isBlank(raw.OperationTime) {
		return model.Transaction{}, &RowError{Field: model.ColOperationTime, Value: raw.OperationTime, Err: fmt.Errorf("missing operation time")}
	}
	operationTime, err := time.Parse(model.TimeLayout, strings.TrimSpace(raw.OperationTime))
	if err != nil {
		return model.Transaction{}, &RowError{Field: model.ColOperationTime, Value: raw.OperationTime, Err: err}
	}

	if isBlank(raw.Amount) {
		return model.Transaction{}, &RowError{Field: model.ColAmount, Value: raw.Amount, Err: fmt.Errorf("missing amount")}
	}
	signedAmount, err := parseDecimal(raw.Amount)
	if err != nil {
		return model.Transaction{}, &RowError{Field: model.ColAmount, Value: raw.Amount, Err: err}
	}

	// The statement encodes spends as negative amounts. Capture the sign
	// once, then keep the magnitude only.
	direction := model.DirectionCredit
	if signedAmount.IsNegative() {
		direction = model.DirectionDebit
	}

	// An absent payment date falls back to the operation day; a present but
	// garbled one rejects the row, since garbling and absence are different
	// conditions.
	var paymentDate time.Time
	if isBlank(raw.PaymentDate) {
		paymentDate = time.Date(operationTime.Year(), operationTime.Month(), operationTime.Day(), 0, 0, 0, 0, operationTime.Location())
	} else {
		paymentDate, err = time.Parse(model.DateLayout, strings.TrimSpace(raw.PaymentDate))
		if err != nil {
			return model.Transaction{}, &RowError{Field: model.ColPaymentDate, Value: raw.PaymentDate, Err: err}
		}
	}

	cashback, err := optionalDecimal(model.ColCashback, raw.Cashback)
	if err != nil {
		return model.Transaction{}, err
	}
	bonusPoints, err := optionalDecimal(model.ColBonusPoints, raw.BonusPoints)
	if err != nil {
		return model.Transaction{}, err
	}
	investmentRoundup, err := optionalDecimal(model.ColInvestmentRoundup, raw.InvestmentRoundup)
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		OperationTime:     operationTime,
		PaymentDate:       paymentDate,
		CardSuffix:        optionalString(raw.CardNumber, ""),
		Status:            optionalString(raw.Status, "OK"),
		Amount:            signedAmount.Abs(),
		Direction:         direction,
		Currency:          optionalString(raw.Currency, "RUB"),
		Cashback:          cashback.Abs(),
		Category:          optionalString(raw.Category, ""),
		MCC:               parseMCC(raw.MCC),
		Description:       optionalString(raw.Description, ""),
		BonusPoints:       bonusPoints,
		InvestmentRoundup: investmentRoundup,
	}, nil
}
