// Package calc implements the investment, loan, insurance, tax and goal
// planning formulas behind the calculator screens.
//
// Every function validates its inputs and reports violations instead of
// clamping: a bad argument yields an error wrapping ErrInvalidInput, and a
// result that overflows yields an error wrapping ErrNonFinite. No function
// returns NaN or ±Inf.
package calc

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput reports a violated precondition.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNonFinite reports a result that is not a finite number.
	ErrNonFinite = errors.New("result is not finite")
)

// Growth is the outcome of an investment projection.
type Growth struct {
	Invested   float64 `json:"invested"`
	Returns    float64 `json:"returns"`
	TotalValue float64 `json:"total_value"`
}

// YearPoint is one year of a projection schedule.
type YearPoint struct {
	Year     int     `json:"year"`
	Invested float64 `json:"invested"`
	Value    float64 `json:"value"`
}

func checkAmount(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite", ErrInvalidInput, name)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidInput, name, v)
	}
	return nil
}

func checkYears(years int) error {
	if years <= 0 {
		return fmt.Errorf("%w: years must be positive, got %d", ErrInvalidInput, years)
	}
	return nil
}

func checkFinite(name string, vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s", ErrNonFinite, name)
		}
	}
	return nil
}

// monthlyRate converts an annual percentage into a monthly fraction.
func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 12 / 100
}

// annuityDueValue is the future value of paying p at the start of each of
// n periods at rate i. A zero rate degrades to p*n.
func annuityDueValue(p, i float64, n int) float64 {
	if i == 0 {
		return p * float64(n)
	}
	return p * ((math.Pow(1+i, float64(n)) - 1) / i) * (1 + i)
}
