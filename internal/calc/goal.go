package calc

import "math"

// Goal is the cost of a future goal and the saving needed to reach it.
type Goal struct {
	FutureCost           float64 `json:"future_cost"`
	MonthlySavingsNeeded float64 `json:"monthly_savings_needed"`
}

// InflationAdjustedGoal inflates today's cost over years and spreads the
// result evenly across the months until then.
func InflationAdjustedGoal(currentCost float64, years int, inflationRatePercent float64) (Goal, error) {
	if err := checkAmount("current cost", currentCost); err != nil {
		return Goal{}, err
	}
	if err := checkAmount("inflation rate", inflationRatePercent); err != nil {
		return Goal{}, err
	}
	if err := checkYears(years); err != nil {
		return Goal{}, err
	}

	future := currentCost * math.Pow(1+inflationRatePercent/100, float64(years))
	monthly := future / float64(years*12)
	if err := checkFinite("goal future cost", future, monthly); err != nil {
		return Goal{}, err
	}
	return Goal{FutureCost: future, MonthlySavingsNeeded: monthly}, nil
}
