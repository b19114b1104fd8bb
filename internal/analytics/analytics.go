// Package analytics turns a snapshot of transactions and accounts into the
// figures a dashboard displays: monthly series, category and income
// breakdowns, a health score, the spending trend and rule-based insights.
//
// Aggregate is pure. It reads no clock and holds no state, so identical
// inputs always produce identical output and concurrent calls are safe.
package analytics

import (
	"time"

	"github.com/cashcare-dev/cashcare/internal/model"
)

const (
	DefaultTrailingMonths   = 7
	DefaultTopCategories    = 7
	DefaultReportMonths     = 6
	DefaultProjectionMonths = 6
)

// Options tunes the window sizes. Zero or negative fields use the defaults.
type Options struct {
	TrailingMonths   int
	TopCategories    int
	ReportMonths     int
	ProjectionMonths int
}

func (o Options) withDefaults() Options {
	if o.TrailingMonths <= 0 {
		o.TrailingMonths = DefaultTrailingMonths
	}
	if o.TopCategories <= 0 {
		o.TopCategories = DefaultTopCategories
	}
	if o.ReportMonths <= 0 {
		o.ReportMonths = DefaultReportMonths
	}
	if o.ProjectionMonths <= 0 {
		o.ProjectionMonths = DefaultProjectionMonths
	}
	return o
}

// Dashboard is everything Aggregate derives from one snapshot.
type Dashboard struct {
	Stats           Stats             `json:"stats"`
	Monthly         []MonthPoint      `json:"monthly"`
	CategorySpend   []CategorySpend   `json:"category_spending"`
	IncomeBreakdown []IncomeSource    `json:"income_breakdown"`
	Health          HealthScore       `json:"health"`
	SpendingRate    SpendingRate      `json:"spending_rate"`
	Insights        []InsightCard     `json:"insights"`
	Reports         []MonthlyReport   `json:"reports"`
	Projection      []ProjectionPoint `json:"projection"`
}

// Aggregate computes the dashboard for the calendar month containing ref.
// Transactions may use either the signed or the typed amount shape. Empty
// inputs are valid and yield zeroed figures.
func Aggregate(txns []model.Transaction, accounts []model.Account, ref time.Time, opts Options) Dashboard {
	opts = opts.withDefaults()
	b := newBook(txns)

	cur := monthStart(ref)
	curKey := monthKey(cur)
	prevKey := monthKey(cur.AddDate(0, -1, 0))

	curTotals := b.totals(curKey)
	prevTotals := b.totals(prevKey)

	stats := computeStats(accounts, curTotals)
	monthly := b.trailing(cur, opts.TrailingMonths)
	rate := computeSpendingRate(curTotals.expenses, prevTotals.expenses)
	health := computeHealth(curTotals, b, monthly)

	return Dashboard{
		Stats:           stats,
		Monthly:         monthly,
		CategorySpend:   b.categorySpend(curKey, opts.TopCategories),
		IncomeBreakdown: b.incomeBreakdown(curKey, curTotals.income),
		Health:          health,
		SpendingRate:    rate,
		Insights:        buildInsights(curTotals, stats.SavingsRate, rate),
		Reports:         b.reports(cur, opts.ReportMonths),
		Projection:      b.projection(cur, curTotals.income, opts.ProjectionMonths),
	}
}
