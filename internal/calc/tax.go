package calc

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Bracket is one band of the progressive tax table. A zero Max means the
// band is unbounded.
type Bracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// TaxEstimate is the result of EstimateTax.
type TaxEstimate struct {
	TaxableIncome        decimal.Decimal `json:"taxable_income"`
	Tax                  decimal.Decimal `json:"tax"`
	EffectiveRatePercent float64         `json:"effective_rate_percent"`
}

var brackets = []Bracket{
	{Min: decimal.NewFromInt(0), Max: decimal.NewFromInt(11000), Rate: decimal.RequireFromString("0.10")},
	{Min: decimal.NewFromInt(11000), Max: decimal.NewFromInt(44725), Rate: decimal.RequireFromString("0.12")},
	{Min: decimal.NewFromInt(44725), Max: decimal.NewFromInt(95375), Rate: decimal.RequireFromString("0.22")},
	{Min: decimal.NewFromInt(95375), Max: decimal.NewFromInt(182100), Rate: decimal.RequireFromString("0.24")},
	{Min: decimal.NewFromInt(182100), Max: decimal.NewFromInt(231250), Rate: decimal.RequireFromString("0.32")},
	{Min: decimal.NewFromInt(231250), Max: decimal.NewFromInt(578125), Rate: decimal.RequireFromString("0.35")},
	{Min: decimal.NewFromInt(578125), Rate: decimal.RequireFromString("0.37")},
}

// Brackets returns a copy of the frozen bracket table.
func Brackets() []Bracket {
	out := make([]Bracket, len(brackets))
	copy(out, brackets)
	return out
}

// EstimateTax applies the bracket table to income less deductions.
func EstimateTax(income, deductions decimal.Decimal) (TaxEstimate, error) {
	if income.IsNegative() {
		return TaxEstimate{}, fmt.Errorf("%w: income must not be negative, got %s", ErrInvalidInput, income)
	}
	if deductions.IsNegative() {
		return TaxEstimate{}, fmt.Errorf("%w: deductions must not be negative, got %s", ErrInvalidInput, deductions)
	}

	taxable := decimal.Max(decimal.Zero, income.Sub(deductions))
	tax := decimal.Zero
	for _, b := range brackets {
		if !taxable.GreaterThan(b.Min) {
			break
		}
		upper := taxable
		if !b.Max.IsZero() && b.Max.LessThan(taxable) {
			upper = b.Max
		}
		tax = tax.Add(upper.Sub(b.Min).Mul(b.Rate))
	}

	var effective float64
	if !income.IsZero() {
		effective = tax.Div(income).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}
	return TaxEstimate{TaxableIncome: taxable, Tax: tax, EffectiveRatePercent: effective}, nil
}
