package calc

import "math"

// Loan is the repayment profile of an amortizing loan.
type Loan struct {
	EMI           float64 `json:"emi"`
	TotalPayment  float64 `json:"total_payment"`
	TotalInterest float64 `json:"total_interest"`
}

// LoanEMI computes the equated monthly instalment for a loan repaid over
// years. A zero rate spreads the principal evenly.
func LoanEMI(principal, annualRatePercent float64, years int) (Loan, error) {
	if err := checkAmount("principal", principal); err != nil {
		return Loan{}, err
	}
	if err := checkAmount("annual rate", annualRatePercent); err != nil {
		return Loan{}, err
	}
	if err := checkYears(years); err != nil {
		return Loan{}, err
	}

	r := monthlyRate(annualRatePercent)
	n := float64(years * 12)

	var emi float64
	if r == 0 {
		emi = principal / n
	} else {
		growth := math.Pow(1+r, n)
		emi = principal * r * growth / (growth - 1)
	}
	total := emi * n
	if err := checkFinite("loan emi", emi, total); err != nil {
		return Loan{}, err
	}
	return Loan{EMI: emi, TotalPayment: total, TotalInterest: total - principal}, nil
}
