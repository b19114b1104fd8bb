package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionSigned(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		typ    TxnType
		want   string
	}{
		{"signed debit", "-42.50", "", "-42.5"},
		{"signed credit", "100", "", "100"},
		{"tagged debit unsigned", "42.50", TxnDebit, "-42.5"},
		{"tagged debit already negative", "-42.50", TxnDebit, "-42.5"},
		{"tagged credit", "-10", TxnCredit, "10"},
	}
	for _, tt := range tests {
		txn := Transaction{Amount: decimal.RequireFromString(tt.amount), Type: tt.typ}
		assert.True(t, decimal.RequireFromString(tt.want).Equal(txn.Signed()), "%s: got %s", tt.name, txn.Signed())
	}
}

func TestTransactionCanonical(t *testing.T) {
	txn := Transaction{Amount: decimal.NewFromInt(15), Type: TxnDebit}
	got := txn.Canonical()
	assert.Empty(t, got.Type)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(-15)))
	assert.True(t, got.IsDebit())
	assert.False(t, got.IsCredit())
}

func TestTransactionMonth(t *testing.T) {
	txn := Transaction{Date: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2025-02", txn.Month())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("food & dining")
	require.NoError(t, err)
	assert.Equal(t, CategoryFoodDining, c)

	c, err = ParseCategory("  Utilities ")
	require.NoError(t, err)
	assert.Equal(t, CategoryUtilities, c)

	_, err = ParseCategory("Groceries")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategoryIsBill(t *testing.T) {
	bills := map[Category]bool{
		CategoryUtilities: true,
		CategoryInsurance: true,
		CategoryHousing:   true,
		CategoryLoan:      true,
	}
	for _, c := range Categories() {
		assert.Equal(t, bills[c], c.IsBill(), "category %q", c)
		assert.True(t, c.Valid())
	}
	assert.False(t, Category("").Valid())
}

func TestAccountType(t *testing.T) {
	assert.True(t, AccountTypeCreditCard.IsLiability())
	assert.True(t, AccountTypeLoan.IsLiability())
	assert.False(t, AccountTypeSavings.IsLiability())
	assert.True(t, AccountTypeInvestment.Valid())
	assert.False(t, AccountType("brokerage").Valid())
}
