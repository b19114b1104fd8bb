package demo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashcare-dev/cashcare/internal/model"
)

var ref = time.Date(2025, 3, 31, 15, 4, 5, 0, time.UTC)

func TestSource_ParkMiller(t *testing.T) {
	s := newSource(42)
	s.next()
	assert.Equal(t, int64(42*16807), s.state)
	s.next()
	assert.Equal(t, int64(42*16807*16807%2147483647), s.state)
}

func TestSource_Range(t *testing.T) {
	s := newSource(7)
	for i := 0; i < 10000; i++ {
		v := s.next()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestSource_NonPositiveSeed(t *testing.T) {
	assert.Positive(t, newSource(0).state)
	assert.Positive(t, newSource(-5).state)
	assert.Positive(t, newSource(2147483647).state)
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := Options{Seed: 42, Months: 2, Account: "HDFC Bank", Ref: ref}
	assert.Equal(t, Generate(opts), Generate(opts))
}

func TestGenerate_SeedChangesOutput(t *testing.T) {
	a := Generate(Options{Seed: 1, Months: 1, Ref: ref})
	b := Generate(Options{Seed: 2, Months: 1, Ref: ref})
	assert.NotEqual(t, a, b)
}

func TestGenerate_Shape(t *testing.T) {
	txns := Generate(Options{Seed: 42, Months: 3, Account: "acc-sbi-1", Ref: ref})

	perDay := map[time.Time]int{}
	credits := 0
	for _, txn := range txns {
		perDay[txn.Date]++
		assert.Equal(t, "acc-sbi-1", txn.AccountRef)
		assert.Equal(t, DefaultCurrency, txn.Currency)
		assert.True(t, txn.Category.Valid(), txn.Category)
		assert.True(t, txn.Amount.IsPositive())
		assert.LessOrEqual(t, -txn.Amount.Exponent(), int32(2))
		assert.False(t, txn.Date.After(ref))
		if txn.Type == model.TxnCredit {
			credits++
		} else {
			assert.Equal(t, model.TxnDebit, txn.Type)
		}
	}

	assert.Len(t, perDay, 90)
	for day, n := range perDay {
		assert.GreaterOrEqual(t, n, 1, day)
		assert.LessOrEqual(t, n, 3, day)
	}
	share := float64(credits) / float64(len(txns))
	assert.InDelta(t, 0.25, share, 0.1)

	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), txns[0].Date)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), txns[len(txns)-1].Date)
}

func TestGenerate_AmountsWithinTemplate(t *testing.T) {
	bounds := map[string]template{}
	for _, tmpl := range append(append([]template{}, creditTemplates...), debitTemplates...) {
		bounds[tmpl.description] = tmpl
	}
	for _, txn := range Generate(Options{Seed: 9, Months: 2, Ref: ref}) {
		tmpl, ok := bounds[txn.Description]
		require.True(t, ok, txn.Description)
		amount := txn.Amount.InexactFloat64()
		assert.GreaterOrEqual(t, amount, tmpl.min)
		assert.LessOrEqual(t, amount, tmpl.max)
		assert.Equal(t, tmpl.category, txn.Category)
	}
}

func TestGenerate_Defaults(t *testing.T) {
	txns := Generate(Options{Seed: 42, Ref: ref})
	days := map[time.Time]bool{}
	for _, txn := range txns {
		days[txn.Date] = true
	}
	assert.Len(t, days, DefaultMonths*30)
}
