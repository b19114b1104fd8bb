package calc

import "math"

// SIPFutureValue projects a monthly systematic investment compounded monthly.
func SIPFutureValue(monthlyAmount, annualRatePercent float64, years int) (Growth, error) {
	if err := checkAmount("monthly amount", monthlyAmount); err != nil {
		return Growth{}, err
	}
	if err := checkAmount("annual rate", annualRatePercent); err != nil {
		return Growth{}, err
	}
	if err := checkYears(years); err != nil {
		return Growth{}, err
	}

	n := years * 12
	fv := annuityDueValue(monthlyAmount, monthlyRate(annualRatePercent), n)
	invested := monthlyAmount * float64(n)
	if err := checkFinite("sip future value", fv, invested); err != nil {
		return Growth{}, err
	}
	return Growth{Invested: invested, Returns: fv - invested, TotalValue: fv}, nil
}

// SIPSchedule returns the invested amount and value at the end of each year.
func SIPSchedule(monthlyAmount, annualRatePercent float64, years int) ([]YearPoint, error) {
	if _, err := SIPFutureValue(monthlyAmount, annualRatePercent, years); err != nil {
		return nil, err
	}
	i := monthlyRate(annualRatePercent)
	points := make([]YearPoint, years)
	for y := 1; y <= years; y++ {
		m := y * 12
		points[y-1] = YearPoint{
			Year:     y,
			Invested: monthlyAmount * float64(m),
			Value:    math.Round(annuityDueValue(monthlyAmount, i, m)),
		}
	}
	return points, nil
}

// LumpsumFutureValue projects a one-off investment compounded annually.
func LumpsumFutureValue(principal, annualRatePercent float64, years int) (Growth, error) {
	if err := checkAmount("principal", principal); err != nil {
		return Growth{}, err
	}
	if err := checkAmount("annual rate", annualRatePercent); err != nil {
		return Growth{}, err
	}
	if err := checkYears(years); err != nil {
		return Growth{}, err
	}

	fv := principal * math.Pow(1+annualRatePercent/100, float64(years))
	if err := checkFinite("lumpsum future value", fv); err != nil {
		return Growth{}, err
	}
	return Growth{Invested: principal, Returns: fv - principal, TotalValue: fv}, nil
}

// LumpsumSchedule returns the value of a lumpsum at the end of each year.
func LumpsumSchedule(principal, annualRatePercent float64, years int) ([]YearPoint, error) {
	if _, err := LumpsumFutureValue(principal, annualRatePercent, years); err != nil {
		return nil, err
	}
	points := make([]YearPoint, years)
	for y := 1; y <= years; y++ {
		points[y-1] = YearPoint{
			Year:     y,
			Invested: principal,
			Value:    math.Round(principal * math.Pow(1+annualRatePercent/100, float64(y))),
		}
	}
	return points, nil
}

// RetirementCorpus is the value of monthly savings at retirement, using the
// same compounding as SIPFutureValue.
func RetirementCorpus(monthlySavings, annualRatePercent float64, yearsToRetirement int) (float64, error) {
	g, err := SIPFutureValue(monthlySavings, annualRatePercent, yearsToRetirement)
	if err != nil {
		return 0, err
	}
	return g.TotalValue, nil
}
