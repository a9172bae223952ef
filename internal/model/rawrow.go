package model

// Date layouts of the statement's cells.
const (
	// TimeLayout is the operation timestamp format, e.g. "31.12.2021 16:44:00".
	TimeLayout = "02.01.2006 15:04:05"
	// DateLayout is the payment date format, e.g. "31.12.2021".
	DateLayout = "02.01.2006"
)

// Column labels of the source statement. The exact header strings are part
// of the source contract; synonyms are not tolerated.
const (
	ColOperationTime     = "Дата операции"
	ColPaymentDate       = "Дата платежа"
	ColCardNumber        = "Номер карты"
	ColStatus            = "Статус"
	ColAmount            = "Сумма операции"
	ColCurrency          = "Валюта операции"
	ColCashback          = "Кэшбэк"
	ColCategory          = "Категория"
	ColMCC               = "MCC"
	ColDescription       = "Описание"
	ColBonusPoints       = "Бонусы (включая кэшбэк)"
	ColInvestmentRoundup = "Округление на инвесткопилку"
)

// RawRow is one statement row as read from the source, before validation.
// Every field is an untrimmed cell string; an empty string means the cell
// was absent. Source readers produce RawRow values, the record parser
// consumes them.
type RawRow struct {
	OperationTime     string
	PaymentDate       string
	CardNumber        string
	Status            string
	Amount            string
	Currency          string
	Cashback          string
	Category          string
	MCC               string
	Description       string
	BonusPoints       string
	InvestmentRoundup string
}

// RequiredColumns lists the headers a source must carry for loading to be
// attempted at all. Everything else degrades to defaults per row.
func RequiredColumns() []string {
	return []string{ColOperationTime, ColAmount}
}
