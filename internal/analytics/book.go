package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashcare-dev/cashcare/internal/model"
)

// entry is a transaction reduced to what aggregation needs. Amount is the
// absolute value; income tells which side of the ledger it sits on.
type entry struct {
	month       string
	category    model.Category
	description string
	amount      decimal.Decimal
	income      bool
}

type monthTotals struct {
	income   decimal.Decimal
	expenses decimal.Decimal
}

// book indexes normalised entries by month.
type book struct {
	byMonth map[string][]entry
}

func newBook(txns []model.Transaction) book {
	b := book{byMonth: make(map[string][]entry)}
	for _, t := range txns {
		signed := t.Signed()
		if signed.IsZero() {
			continue
		}
		cat := t.Category
		if !cat.Valid() {
			cat = model.CategoryOther
		}
		e := entry{
			month:       t.Month(),
			category:    cat,
			description: t.Description,
			amount:      signed.Abs(),
			income:      signed.IsPositive(),
		}
		b.byMonth[e.month] = append(b.byMonth[e.month], e)
	}
	return b
}

func (b book) entries(key string) []entry {
	return b.byMonth[key]
}

func (b book) totals(key string) monthTotals {
	var t monthTotals
	for _, e := range b.byMonth[key] {
		if e.income {
			t.income = t.income.Add(e.amount)
		} else {
			t.expenses = t.expenses.Add(e.amount)
		}
	}
	return t
}

// billMonths counts the distinct months holding at least one bill payment.
func (b book) billMonths() int {
	n := 0
	for _, entries := range b.byMonth {
		for _, e := range entries {
			if !e.income && e.category.IsBill() {
				n++
				break
			}
		}
	}
	return n
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func monthKey(t time.Time) string {
	return t.Format(model.MonthKeyFormat)
}

var hundred = decimal.NewFromInt(100)

// percentOf returns round(part/whole*100), or 0 when whole is zero.
func percentOf(part, whole decimal.Decimal) int {
	if whole.IsZero() {
		return 0
	}
	return int(part.Div(whole).Mul(hundred).Round(0).IntPart())
}
