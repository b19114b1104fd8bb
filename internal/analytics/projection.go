package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionPoint pairs projected income with the recorded income for a
// month. Actual is nil for future months and months with no income.
type ProjectionPoint struct {
	Key       string           `json:"key"`
	Label     string           `json:"label"`
	Projected decimal.Decimal  `json:"projected"`
	Actual    *decimal.Decimal `json:"actual"`
}

var (
	projectionBase = decimal.RequireFromString("0.95")
	projectionStep = decimal.RequireFromString("0.03")
)

// projection starts two months before cur and grows the current month's
// income by three points per month.
func (b book) projection(cur time.Time, income decimal.Decimal, n int) []ProjectionPoint {
	out := make([]ProjectionPoint, 0, n)
	for i := 0; i < n; i++ {
		m := cur.AddDate(0, i-2, 0)
		key := monthKey(m)
		factor := projectionBase.Add(projectionStep.Mul(decimal.NewFromInt(int64(i))))

		p := ProjectionPoint{
			Key:       key,
			Label:     m.Format("Jan"),
			Projected: income.Mul(factor).Round(0),
		}
		if !m.After(cur) {
			if actual := b.totals(key).income.Round(0); !actual.IsZero() {
				p.Actual = &actual
			}
		}
		out = append(out, p)
	}
	return out
}
