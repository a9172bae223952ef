package model

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Direction records whether money left or entered the account. The raw
// statement encodes this in the sign of the amount; we capture it once at
// parse time because Amount is stored as an unsigned magnitude.
type Direction string

const (
	// DirectionDebit marks money leaving the account (a spend).
	DirectionDebit Direction = "debit"
	// DirectionCredit marks money entering the account.
	DirectionCredit Direction = "credit"
)

// Transaction represents a single validated financial operation. It is
// constructed once by the record parser and never mutated afterwards.
type Transaction struct {
	OperationTime     time.Time       // When the operation occurred; drives every date-windowed query
	PaymentDate       time.Time       // Settlement date, day precision; falls back to the operation day
	CardSuffix        string          // Masked card identifier, e.g. "*7197"
	Status            string          // Operation status, "OK" when the source is silent
	Amount            decimal.Decimal // Unsigned magnitude
	Direction         Direction
	Currency          string // 3-letter code
	Cashback          decimal.Decimal
	Category          string
	MCC               *int // Merchant category code; nil when the source cell is blank or non-numeric
	Description       string
	BonusPoints       decimal.Decimal
	InvestmentRoundup decimal.Decimal // Round-up already recorded by the bank, not our own computation
}

// SignedAmount restores the statement's signed view: debits are negative.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Direction == DirectionDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// IsDebit reports whether the transaction is a spend.
func (t *Transaction) IsDebit() bool {
	return t.Direction == DirectionDebit
}

// ToRow serializes the transaction back into the source's row shape.
// Decimal cells come out dot-separated; parsing the result reproduces the
// same amounts, dates, category and MCC.
func (t *Transaction) ToRow() RawRow {
	row := RawRow{
		OperationTime:     t.OperationTime.Format(TimeLayout),
		PaymentDate:       t.PaymentDate.Format(DateLayout),
		CardNumber:        t.CardSuffix,
		Status:            t.Status,
		Amount:            t.SignedAmount().String(),
		Currency:          t.Currency,
		Cashback:          t.Cashback.String(),
		Category:          t.Category,
		Description:       t.Description,
		BonusPoints:       t.BonusPoints.String(),
		InvestmentRoundup: t.InvestmentRoundup.String(),
	}
	if t.MCC != nil {
		row.MCC = fmt.Sprintf("%d", *t.MCC)
	}
	return row
}

// GenerateHash creates a stable identity hash for duplicate detection.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%s:%s:%s",
		t.OperationTime.Format("2006-01-02 15:04:05"),
		t.SignedAmount().String(),
		t.Description,
		t.CardSuffix)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
