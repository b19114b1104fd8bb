package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cashcare-dev/cashcare/internal/id"
	"github.com/cashcare-dev/cashcare/internal/model"
)

// Validation rules, in the order they are checked.
const (
	RuleCategory = iota + 1
	RuleAccount
	RuleDate
	RuleNonZero
	RulePrecision
	RuleUniqueID
)

// ValidationError describes a single rule violation.
type ValidationError struct {
	Rule        int
	TxnID       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("rule %d [%s]: %s", e.Rule, e.TxnID, e.Description)
}

// ValidationErrors is every violation found in one validation pass.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, ve := range errs {
		msgs[i] = ve.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// AccountChecker tests whether an account reference (id or name) exists.
type AccountChecker interface {
	Exists(ref string) bool
}

var cents = decimal.NewFromInt(100)

// ValidateTransactions checks one month's worth of rows. A nil accounts
// checker skips the account rule.
func ValidateTransactions(txns []model.Transaction, accounts AccountChecker, year, month int) ValidationErrors {
	var errs ValidationErrors
	seen := make(map[string]bool, len(txns))

	for _, txn := range txns {
		if !txn.Category.Valid() {
			errs = append(errs, ValidationError{
				Rule:        RuleCategory,
				TxnID:       txn.ID,
				Description: fmt.Sprintf("unknown category %q", txn.Category),
			})
		}

		if accounts != nil && !accounts.Exists(txn.AccountRef) {
			errs = append(errs, ValidationError{
				Rule:        RuleAccount,
				TxnID:       txn.ID,
				Description: fmt.Sprintf("unknown account %q", txn.AccountRef),
			})
		}

		if txn.Date.Year() != year || int(txn.Date.Month()) != month {
			errs = append(errs, ValidationError{
				Rule:        RuleDate,
				TxnID:       txn.ID,
				Description: fmt.Sprintf("date %s not in %04d-%02d", txn.Date.Format(dateFormat), year, month),
			})
		}

		if txn.Amount.IsZero() {
			errs = append(errs, ValidationError{
				Rule:        RuleNonZero,
				TxnID:       txn.ID,
				Description: "amount must not be zero",
			})
		} else if scaled := txn.Amount.Mul(cents); !scaled.Equal(scaled.Truncate(0)) {
			errs = append(errs, ValidationError{
				Rule:        RulePrecision,
				TxnID:       txn.ID,
				Description: fmt.Sprintf("amount %s has more than 2 decimal places", txn.Amount),
			})
		}

		if _, _, _, err := id.ParseTxnID(txn.ID); err != nil {
			errs = append(errs, ValidationError{
				Rule:        RuleUniqueID,
				TxnID:       txn.ID,
				Description: fmt.Sprintf("invalid transaction ID: %v", err),
			})
		} else if seen[txn.ID] {
			errs = append(errs, ValidationError{
				Rule:        RuleUniqueID,
				TxnID:       txn.ID,
				Description: "duplicate transaction ID",
			})
		}
		seen[txn.ID] = true
	}

	return errs
}
