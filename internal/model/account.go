package model

import "github.com/shopspring/decimal"

// AccountType classifies a bank account.
type AccountType string

const (
	AccountTypeSavings    AccountType = "savings"
	AccountTypeChecking   AccountType = "checking"
	AccountTypeCreditCard AccountType = "credit_card"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeInvestment AccountType = "investment"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeSavings, AccountTypeChecking, AccountTypeCreditCard, AccountTypeLoan, AccountTypeInvestment:
		return true
	}
	return false
}

// IsLiability reports whether balances of this type are normally negative.
func (t AccountType) IsLiability() bool {
	return t == AccountTypeCreditCard || t == AccountTypeLoan
}

// Account represents a row in accounts/accounts.csv.
type Account struct {
	ID       string
	Name     string
	Type     AccountType
	Balance  decimal.Decimal // negative for liabilities
	Currency string
}
