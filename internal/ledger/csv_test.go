package ledger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashcare-dev/cashcare/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestRoundTrip(t *testing.T) {
	txns := []model.Transaction{
		{
			ID:          "2025-01-001",
			Date:        date(2025, 1, 3),
			AccountRef:  "HDFC Savings",
			Description: "Swiggy, order #42",
			Amount:      dec("-450.50"),
			Category:    model.CategoryFoodDining,
			Merchant:    "Swiggy",
			Currency:    "INR",
			Reference:   "chase_20250103_SWIGGY",
		},
		{
			ID:          "2025-01-002",
			Date:        date(2025, 1, 5),
			AccountRef:  "HDFC Savings",
			Description: "Salary Credit",
			Amount:      dec("85000"),
			Category:    model.CategoryIncome,
			Currency:    "INR",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, txns))
	assert.True(t, strings.HasPrefix(buf.String(), Header+"\n"))

	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i := range txns {
		assert.Equal(t, txns[i].ID, got[i].ID)
		assert.True(t, txns[i].Date.Equal(got[i].Date))
		assert.Equal(t, txns[i].AccountRef, got[i].AccountRef)
		assert.Equal(t, txns[i].Description, got[i].Description)
		assert.True(t, txns[i].Amount.Equal(got[i].Amount), "amount mismatch row %d", i)
		assert.Equal(t, txns[i].Category, got[i].Category)
		assert.Equal(t, txns[i].Merchant, got[i].Merchant)
		assert.Equal(t, txns[i].Currency, got[i].Currency)
		assert.Equal(t, txns[i].Reference, got[i].Reference)
	}
}

func TestMarshalTransaction_SignsTypedAmounts(t *testing.T) {
	row := MarshalTransaction(model.Transaction{
		Date:   date(2025, 2, 1),
		Amount: dec("12.5"),
		Type:   model.TxnDebit,
	})
	assert.Equal(t, "-12.50", row[colAmount])
	assert.Equal(t, "2025-02-01", row[colDate])
}

func TestReadTransactions_Empty(t *testing.T) {
	got, err := ReadTransactions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ReadTransactions(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadTransactions_Errors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want string
	}{
		{"wrong field count", Header + "\n1,2,3\n", "reading transactions CSV"},
		{"bad date", Header + "\n2025-01-001,01/03/2025,a,d,1.00,Other,,,\n", "parsing date"},
		{"bad amount", Header + "\n2025-01-001,2025-01-03,a,d,abc,Other,,,\n", "parsing amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTransactions(strings.NewReader(tt.csv))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestUnmarshalTransaction_KeepsUnknownCategory(t *testing.T) {
	txn, err := UnmarshalTransaction([]string{"2025-01-001", "2025-01-03", "a", "d", "1.00", "Bills", "", "", ""})
	require.NoError(t, err)
	assert.Equal(t, model.Category("Bills"), txn.Category)

	txn, err = UnmarshalTransaction([]string{"2025-01-001", "2025-01-03", "a", "d", "1.00", "food & dining", "", "", ""})
	require.NoError(t, err)
	assert.Equal(t, model.CategoryFoodDining, txn.Category)
}

func TestAppendTransactions_NoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, AppendTransactions(&buf, []model.Transaction{{ID: "2025-01-001", Date: date(2025, 1, 1), Amount: dec("1")}}))
	assert.Equal(t, "2025-01-001,2025-01-01,,,1.00,,,,\n", buf.String())
}
