package analytics

import (
	"math"

	"github.com/shopspring/decimal"
)

// HealthCategory is the qualitative band of a health score.
type HealthCategory string

const (
	HealthExcellent HealthCategory = "Excellent"
	HealthGood      HealthCategory = "Good"
	HealthAverage   HealthCategory = "Average"
	HealthPoor      HealthCategory = "Poor"
)

// HealthScore is a 0-100 rating built from four sub-scores of up to 25
// points each.
type HealthScore struct {
	Score                 int            `json:"score"`
	Category              HealthCategory `json:"category"`
	ExpenseRatioPoints    int            `json:"expense_ratio_points"`
	SavingsPoints         int            `json:"savings_points"`
	BillConsistencyPoints int            `json:"bill_consistency_points"`
	StabilityPoints       int            `json:"stability_points"`
}

const (
	maxSubScore     = 25
	maxScore        = 100
	billMonthWeight = 8.3
)

var (
	ratioHalf       = decimal.RequireFromString("0.5")
	ratioSeventy    = decimal.RequireFromString("0.7")
	ratioEightyFive = decimal.RequireFromString("0.85")
	ratioOne        = decimal.NewFromInt(1)
)

func computeHealth(cur monthTotals, b book, monthly []MonthPoint) HealthScore {
	if !cur.income.IsPositive() {
		return HealthScore{Category: HealthPoor}
	}

	h := HealthScore{
		ExpenseRatioPoints:    expenseRatioPoints(cur.expenses.Div(cur.income)),
		SavingsPoints:         savingsPoints(savingsRate(cur)),
		BillConsistencyPoints: billConsistencyPoints(b.billMonths()),
	}

	expenses := make([]float64, 0, len(monthly))
	for _, p := range monthly {
		if v := b.totals(p.Key).expenses; v.IsPositive() {
			expenses = append(expenses, v.InexactFloat64())
		}
	}
	h.StabilityPoints = min(maxSubScore, int(math.Round(spendingStability(expenses)*maxSubScore)))

	h.Score = min(maxScore, h.ExpenseRatioPoints+h.SavingsPoints+h.BillConsistencyPoints+h.StabilityPoints)
	h.Category = healthCategory(h.Score)
	return h
}

func expenseRatioPoints(ratio decimal.Decimal) int {
	switch {
	case ratio.LessThanOrEqual(ratioHalf):
		return 25
	case ratio.LessThanOrEqual(ratioSeventy):
		return 20
	case ratio.LessThanOrEqual(ratioEightyFive):
		return 14
	case ratio.LessThanOrEqual(ratioOne):
		return 7
	default:
		return 0
	}
}

func savingsPoints(rate decimal.Decimal) int {
	switch {
	case rate.GreaterThanOrEqual(decimal.NewFromInt(30)):
		return 25
	case rate.GreaterThanOrEqual(decimal.NewFromInt(20)):
		return 20
	case rate.GreaterThanOrEqual(decimal.NewFromInt(10)):
		return 14
	case !rate.IsNegative():
		return 7
	default:
		return 0
	}
}

func billConsistencyPoints(months int) int {
	return min(maxSubScore, int(math.Round(float64(months)*billMonthWeight)))
}

// spendingStability is 1 minus the coefficient of variation of the monthly
// expenses, floored at 0. A single month has no variance and scores 1.
func spendingStability(expenses []float64) float64 {
	if len(expenses) == 0 {
		return 1
	}
	var sum float64
	for _, v := range expenses {
		sum += v
	}
	mean := sum / float64(len(expenses))
	if mean <= 0 {
		return 1
	}

	var variance float64
	if len(expenses) > 1 {
		for _, v := range expenses {
			variance += (v - mean) * (v - mean)
		}
		variance /= float64(len(expenses))
	}
	return max(0, 1-math.Sqrt(variance)/mean)
}

func healthCategory(score int) HealthCategory {
	switch {
	case score >= 80:
		return HealthExcellent
	case score >= 60:
		return HealthGood
	case score >= 40:
		return HealthAverage
	default:
		return HealthPoor
	}
}
