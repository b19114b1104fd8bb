// Package demo generates deterministic sample transactions.
package demo

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashcare-dev/cashcare/internal/model"
)

const (
	// DefaultSeed matches the sample data shipped with the dashboard.
	DefaultSeed     = 42
	DefaultMonths   = 3
	DefaultCurrency = "INR"

	daysPerMonth = 30
	creditShare  = 0.25
	maxPerDay    = 3
)

// Options controls a Generate run.
type Options struct {
	Seed     int64
	Months   int
	Account  string    // account id or name stamped on every row
	Currency string    // defaults to INR
	Ref      time.Time // last day generated; walks backwards from here
}

// Generate returns Months*30 days of sample transactions ending at Ref,
// newest day first. The same Options always yield the same rows.
func Generate(opts Options) []model.Transaction {
	if opts.Months <= 0 {
		opts.Months = DefaultMonths
	}
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}
	ref := time.Date(opts.Ref.Year(), opts.Ref.Month(), opts.Ref.Day(), 0, 0, 0, 0, time.UTC)
	rng := newSource(opts.Seed)

	var txns []model.Transaction
	for offset := 0; offset < opts.Months*daysPerMonth; offset++ {
		date := ref.AddDate(0, 0, -offset)
		count := rng.intn(maxPerDay) + 1
		for i := 0; i < count; i++ {
			credit := rng.next() < creditShare
			pool := debitTemplates
			txnType := model.TxnDebit
			if credit {
				pool = creditTemplates
				txnType = model.TxnCredit
			}
			tmpl := pool[rng.intn(len(pool))]
			amount := math.Round((tmpl.min+rng.next()*(tmpl.max-tmpl.min))*100) / 100

			txns = append(txns, model.Transaction{
				Date:        date,
				AccountRef:  opts.Account,
				Description: tmpl.description,
				Amount:      decimal.NewFromFloat(amount),
				Type:        txnType,
				Category:    tmpl.category,
				Currency:    opts.Currency,
			})
		}
	}
	return txns
}
