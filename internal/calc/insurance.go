package calc

import "fmt"

// CoveragePerDependent is added to the recommended cover for each dependent.
const CoveragePerDependent = 100000

// AgeMultiplier returns how many years of income the cover should replace.
func AgeMultiplier(age int) float64 {
	switch {
	case age < 35:
		return 15
	case age < 45:
		return 12
	default:
		return 8
	}
}

// RecommendedInsuranceCoverage returns the life cover suggested for the
// given income, age, dependents and outstanding liabilities.
func RecommendedInsuranceCoverage(annualIncome float64, age, dependents int, liabilities float64) (float64, error) {
	if err := checkAmount("annual income", annualIncome); err != nil {
		return 0, err
	}
	if err := checkAmount("liabilities", liabilities); err != nil {
		return 0, err
	}
	if age < 0 {
		return 0, fmt.Errorf("%w: age must not be negative, got %d", ErrInvalidInput, age)
	}
	if dependents < 0 {
		return 0, fmt.Errorf("%w: dependents must not be negative, got %d", ErrInvalidInput, dependents)
	}

	coverage := annualIncome*AgeMultiplier(age) + liabilities + float64(dependents)*CoveragePerDependent
	if err := checkFinite("insurance coverage", coverage); err != nil {
		return 0, err
	}
	return coverage, nil
}
