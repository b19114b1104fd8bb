package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/cashcare-dev/cashcare/internal/model"
)

// Stats are the headline figures for the current month.
type Stats struct {
	TotalBalance    decimal.Decimal `json:"total_balance"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	SavingsRate     float64         `json:"savings_rate"`
}

// Direction is the month-over-month movement of spending.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// SpendingRate compares this month's expenses with last month's.
type SpendingRate struct {
	CurrentMonth  decimal.Decimal `json:"current_month"`
	PreviousMonth decimal.Decimal `json:"previous_month"`
	ChangePercent float64         `json:"change_percent"`
	Direction     Direction       `json:"direction"`
}

// changeDeadband filters noise: moves within ±1% are reported as flat.
var changeDeadband = decimal.NewFromInt(1)

func computeStats(accounts []model.Account, cur monthTotals) Stats {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	return Stats{
		TotalBalance:    total,
		MonthlyIncome:   cur.income.Round(2),
		MonthlyExpenses: cur.expenses.Round(2),
		SavingsRate:     savingsRate(cur).Round(1).InexactFloat64(),
	}
}

// savingsRate is (income-expenses)/income*100, unrounded, 0 without income.
func savingsRate(cur monthTotals) decimal.Decimal {
	if !cur.income.IsPositive() {
		return decimal.Zero
	}
	return cur.income.Sub(cur.expenses).Div(cur.income).Mul(hundred)
}

func computeSpendingRate(cur, prev decimal.Decimal) SpendingRate {
	change := decimal.Zero
	if prev.IsPositive() {
		change = cur.Sub(prev).Div(prev).Mul(hundred).Round(1)
	}

	dir := DirectionFlat
	switch {
	case change.GreaterThan(changeDeadband):
		dir = DirectionUp
	case change.LessThan(changeDeadband.Neg()):
		dir = DirectionDown
	}

	return SpendingRate{
		CurrentMonth:  cur.Round(0),
		PreviousMonth: prev.Round(0),
		ChangePercent: change.Abs().InexactFloat64(),
		Direction:     dir,
	}
}
