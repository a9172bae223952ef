package analytics

import (
	"regexp"
	"strings"

	"github.com/avdeyev/kopilka/internal/model"
)

// TransfersCategory is the literal category the statement uses for money
// transfers.
const TransfersCategory = "Переводы"

var (
	// Russian mobile numbers: optional +7/7/8 prefix, an operator code
	// starting with 4, 8 or 9, then 3+2+2 digits, with optional spaces,
	// hyphens and parentheses between groups. Matched anywhere inside the
	// description, not anchored.
	phonePattern = regexp.MustCompile(`(\+7|7|8)?[\s\-]?\(?[489][0-9]{2}\)?[\s\-]?[0-9]{3}[\s\-]?[0-9]{2}[\s\-]?[0-9]{2}`)

	// Person transfers carry a Cyrillic "Name I." in the description,
	// e.g. "Иван С.".
	personPattern = regexp.MustCompile(`[А-Я][а-я]+\s[А-Я]\.`)
)

// Search returns, in original order, the transactions whose description or
// category contains the query, case-insensitively. An empty query matches
// everything.
func Search(transactions []model.Transaction, query string) []model.Transaction {
	q := strings.ToLower(query)

	matches := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if strings.Contains(strings.ToLower(t.Description), q) ||
			strings.Contains(strings.ToLower(t.Category), q) {
			matches = append(matches, t)
		}
	}
	return matches
}

// FindPhoneTransactions returns the transactions whose description
// mentions a Russian mobile number, in original order.
func FindPhoneTransactions(transactions []model.Transaction) []model.Transaction {
	matches := make([]model.Transaction, 0)
	for _, t := range transactions {
		if phonePattern.MatchString(t.Description) {
			matches = append(matches, t)
		}
	}
	return matches
}

// FindPersonTransfers returns the transactions that are transfers to a
// private person: the category is the transfers category AND the
// description names a person, e.g. "Иван С.". Both conditions are
// required.
func FindPersonTransfers(transactions []model.Transaction) []model.Transaction {
	matches := make([]model.Transaction, 0)
	for _, t := range transactions {
		if t.Category == TransfersCategory && personPattern.MatchString(t.Description) {
			matches = append(matches, t)
		}
	}
	return matches
}
