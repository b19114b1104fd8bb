package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnType tags an unsigned amount as money in or money out.
type TxnType string

const (
	TxnCredit TxnType = "credit"
	TxnDebit  TxnType = "debit"
)

// MonthKeyFormat is the layout of month bucket keys ("2025-01").
const MonthKeyFormat = "2006-01"

// Transaction is a single movement of money on an account.
//
// Callers may supply either a signed Amount with an empty Type, or an
// unsigned Amount tagged with Type. Signed resolves both to one form.
type Transaction struct {
	ID          string
	Date        time.Time
	AccountRef  string // account id or name
	Description string
	Amount      decimal.Decimal
	Type        TxnType
	Category    Category
	Merchant    string
	Currency    string
	Reference   string // source-system reference used for de-duplication
}

// Signed returns the amount with positive = income, negative = expense.
func (t Transaction) Signed() decimal.Decimal {
	switch t.Type {
	case TxnDebit:
		return t.Amount.Abs().Neg()
	case TxnCredit:
		return t.Amount.Abs()
	default:
		return t.Amount
	}
}

// IsDebit reports whether the transaction takes money out.
func (t Transaction) IsDebit() bool {
	return t.Signed().IsNegative()
}

// IsCredit reports whether the transaction brings money in.
func (t Transaction) IsCredit() bool {
	return t.Signed().IsPositive()
}

// Month returns the YYYY-MM bucket the transaction falls in.
func (t Transaction) Month() string {
	return t.Date.Format(MonthKeyFormat)
}

// Canonical returns a copy carrying a signed amount and no type tag.
func (t Transaction) Canonical() Transaction {
	t.Amount = t.Signed()
	t.Type = ""
	return t
}
