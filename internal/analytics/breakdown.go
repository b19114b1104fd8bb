package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cashcare-dev/cashcare/internal/model"
)

// CategorySpend is one slice of the current month's spending.
type CategorySpend struct {
	Category   model.Category  `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int             `json:"percentage"`
}

// IncomeSource is one slice of the current month's income.
type IncomeSource struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int             `json:"percentage"`
}

const (
	SourceSalary      = "Salary"
	SourceFreelance   = "Freelance"
	SourceInvestments = "Investments"
	SourceOther       = "Other"
)

// categorySpend groups the month's expenses by category and keeps the top
// entries. Percentages are of the whole month, so the kept slices need not
// add up to 100.
func (b book) categorySpend(key string, top int) []CategorySpend {
	sums := make(map[model.Category]decimal.Decimal)
	total := decimal.Zero
	for _, e := range b.entries(key) {
		if e.income {
			continue
		}
		sums[e.category] = sums[e.category].Add(e.amount)
		total = total.Add(e.amount)
	}

	type slice struct {
		cat    model.Category
		amount decimal.Decimal
	}
	slices := make([]slice, 0, len(sums))
	for cat, amount := range sums {
		slices = append(slices, slice{cat, amount})
	}
	sort.Slice(slices, func(i, j int) bool {
		if c := slices[i].amount.Cmp(slices[j].amount); c != 0 {
			return c > 0
		}
		return slices[i].cat < slices[j].cat
	})
	if len(slices) > top {
		slices = slices[:top]
	}

	out := make([]CategorySpend, len(slices))
	for i, s := range slices {
		out[i] = CategorySpend{
			Category:   s.cat,
			Amount:     s.amount.Round(0),
			Percentage: percentOf(s.amount, total),
		}
	}
	return out
}

// incomeSource classifies a credit by its description.
func incomeSource(desc string) string {
	lower := strings.ToLower(desc)
	switch {
	case strings.Contains(lower, "salary"):
		return SourceSalary
	case strings.Contains(lower, "freelance"):
		return SourceFreelance
	case strings.Contains(lower, "dividend"),
		strings.Contains(lower, "interest"),
		strings.Contains(desc, "FD"):
		return SourceInvestments
	default:
		return SourceOther
	}
}

func (b book) incomeBreakdown(key string, income decimal.Decimal) []IncomeSource {
	sums := make(map[string]decimal.Decimal)
	for _, e := range b.entries(key) {
		if !e.income {
			continue
		}
		src := incomeSource(e.description)
		sums[src] = sums[src].Add(e.amount)
	}

	out := make([]IncomeSource, 0, len(sums))
	for name, amount := range sums {
		out = append(out, IncomeSource{
			Name:       name,
			Amount:     amount.Round(0),
			Percentage: percentOf(amount, income),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}
