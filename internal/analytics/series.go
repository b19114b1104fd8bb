package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthPoint is one bucket of the trailing monthly series.
type MonthPoint struct {
	Key      string          `json:"key"`
	Label    string          `json:"label"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Savings  decimal.Decimal `json:"savings"`
}

// MonthlyReport summarises one calendar month.
type MonthlyReport struct {
	Key           string          `json:"key"`
	Label         string          `json:"label"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetSavings    decimal.Decimal `json:"net_savings"`
}

// trailing returns n points ending with the month starting at cur, oldest
// first. Months without transactions are present with zero values.
func (b book) trailing(cur time.Time, n int) []MonthPoint {
	points := make([]MonthPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		m := cur.AddDate(0, -i, 0)
		key := monthKey(m)
		t := b.totals(key)
		points = append(points, MonthPoint{
			Key:      key,
			Label:    m.Format("Jan"),
			Income:   t.income.Round(0),
			Expenses: t.expenses.Round(0),
			Savings:  t.income.Sub(t.expenses).Round(0),
		})
	}
	return points
}

// reports returns n monthly summaries, newest first.
func (b book) reports(cur time.Time, n int) []MonthlyReport {
	out := make([]MonthlyReport, 0, n)
	for i := 0; i < n; i++ {
		m := cur.AddDate(0, -i, 0)
		key := monthKey(m)
		t := b.totals(key)
		out = append(out, MonthlyReport{
			Key:           key,
			Label:         m.Format("January 2006"),
			TotalIncome:   t.income.Round(0),
			TotalExpenses: t.expenses.Round(0),
			NetSavings:    t.income.Sub(t.expenses).Round(0),
		})
	}
	return out
}
