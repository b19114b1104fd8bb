package ledger

import (
	"strings"

	"github.com/cashcare-dev/cashcare/internal/model"
)

// dedupKey identifies a transaction across imports: the source reference
// when there is one, otherwise its date, signed amount, description and
// account.
func dedupKey(t model.Transaction) string {
	if t.Reference != "" {
		return "ref:" + t.Reference
	}
	return strings.Join([]string{
		"row",
		t.Date.Format(dateFormat),
		t.Signed().StringFixed(2),
		strings.ToLower(strings.TrimSpace(t.Description)),
		strings.ToLower(t.AccountRef),
	}, "|")
}

// Deduplicate returns the incoming transactions not already present in
// existing, and how many were dropped. Repeats within incoming are dropped
// too.
func Deduplicate(existing, incoming []model.Transaction) ([]model.Transaction, int) {
	seen := make(map[string]bool, len(existing)+len(incoming))
	for _, t := range existing {
		seen[dedupKey(t)] = true
	}

	var kept []model.Transaction
	dropped := 0
	for _, t := range incoming {
		k := dedupKey(t)
		if seen[k] {
			dropped++
			continue
		}
		seen[k] = true
		kept = append(kept, t)
	}
	return kept, dropped
}
