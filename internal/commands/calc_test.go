package commands_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashcare-dev/cashcare/internal/calc"
)

func TestCalc_SIP(t *testing.T) {
	out, err := runCashcare(t, "calc", "sip", "--monthly", "5000", "--rate", "12", "--years", "10", "--json")
	require.NoError(t, err)

	var g calc.Growth
	require.NoError(t, json.Unmarshal([]byte(out), &g))
	assert.InDelta(t, 1161695, g.TotalValue, 1)
	assert.InDelta(t, 600000, g.Invested, 0.001)

	out, err = runCashcare(t, "calc", "sip", "--monthly", "5000", "--years", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Total value")
}

func TestCalc_LumpsumSchedule(t *testing.T) {
	out, err := runCashcare(t, "calc", "lumpsum", "--principal", "100000", "--rate", "10", "--years", "3", "--schedule", "--json")
	require.NoError(t, err)

	var points []calc.YearPoint
	require.NoError(t, json.Unmarshal([]byte(out), &points))
	require.Len(t, points, 3)
	assert.InDelta(t, 133100, points[2].Value, 0.01)
}

func TestCalc_Loan(t *testing.T) {
	out, err := runCashcare(t, "calc", "loan", "--principal", "300000", "--rate", "7", "--years", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "1995.91")
}

func TestCalc_Tax(t *testing.T) {
	out, err := runCashcare(t, "calc", "tax", "--income", "85000", "--deductions", "13850", "--json")
	require.NoError(t, err)

	var est struct {
		TaxableIncome float64 `json:"taxable_income"`
		Tax           float64 `json:"tax"`
		Effective     float64 `json:"effective_rate_percent"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &est))
	assert.InDelta(t, 71150, est.TaxableIncome, 0.001)
	assert.InDelta(t, 10960.5, est.Tax, 0.001)
	assert.InDelta(t, 12.8947, est.Effective, 0.0001)
}

func TestCalc_OtherCalculators(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"retirement", []string{"calc", "retirement", "--monthly", "1000", "--rate", "0", "--years", "1"}, "12000.00"},
		{"insurance", []string{"calc", "insurance", "--income", "1000000", "--age", "30", "--dependents", "2"}, "15x"},
		{"goal", []string{"calc", "goal", "--cost", "100000", "--years", "1", "--inflation", "0"}, "100000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCashcare(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCalc_InvalidInput(t *testing.T) {
	_, err := runCashcare(t, "calc", "loan", "--principal=-5")
	assert.ErrorIs(t, err, calc.ErrInvalidInput)

	_, err = runCashcare(t, "calc", "tax", "--income", "abc")
	assert.ErrorContains(t, err, "invalid income")

	_, err = runCashcare(t, "calc", "sip")
	assert.Error(t, err, "--monthly is required")
}
