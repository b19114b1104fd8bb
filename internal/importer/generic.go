package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashcare-dev/cashcare/internal/model"
)

// GenericParser parses any CSV whose header names its columns. When the
// date, description or amount column cannot be found by name, the first,
// second and third columns are used.
type GenericParser struct{}

var (
	dateAliases     = []string{"date", "txn_date", "transaction date", "posted date"}
	descAliases     = []string{"description", "memo", "name"}
	amountAliases   = []string{"amount", "value"}
	typeAliases     = []string{"type", "txn_type"}
	categoryAliases = []string{"category"}
	merchantAliases = []string{"merchant", "payee"}

	genericDateFormats = []string{"2006-01-02", "01/02/2006", "2006/01/02", time.RFC3339}
)

type genericColumns struct {
	date, desc, amount, typ, category, merchant int
}

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads a header-mapped CSV. Rows without a description or with a
// zero amount are skipped.
func (p *GenericParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading generic CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	cols := mapColumns(records[0])

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, ok, err := parseGenericRow(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if ok {
			txns = append(txns, txn)
		}
	}
	return txns, nil
}

func mapColumns(header []string) genericColumns {
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	find := func(aliases []string, fallback int) int {
		for _, a := range aliases {
			if i, ok := index[a]; ok {
				return i
			}
		}
		return fallback
	}
	return genericColumns{
		date:     find(dateAliases, 0),
		desc:     find(descAliases, 1),
		amount:   find(amountAliases, 2),
		typ:      find(typeAliases, -1),
		category: find(categoryAliases, -1),
		merchant: find(merchantAliases, -1),
	}
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func parseGenericRow(rec []string, cols genericColumns) (model.Transaction, bool, error) {
	desc := field(rec, cols.desc)
	if desc == "" {
		return model.Transaction{}, false, nil
	}

	amount, err := parseLooseAmount(field(rec, cols.amount))
	if err != nil {
		return model.Transaction{}, false, err
	}
	if amount.IsZero() {
		return model.Transaction{}, false, nil
	}

	raw := field(rec, cols.date)
	date, err := parseLooseDate(raw)
	if err != nil {
		return model.Transaction{}, false, err
	}

	txn := model.Transaction{
		Date:        date,
		Description: desc,
		Amount:      amount,
		Merchant:    field(rec, cols.merchant),
	}

	switch strings.ToLower(field(rec, cols.typ)) {
	case string(model.TxnCredit):
		txn.Type = model.TxnCredit
	case string(model.TxnDebit):
		txn.Type = model.TxnDebit
	}

	if cat, err := model.ParseCategory(field(rec, cols.category)); err == nil {
		txn.Category = cat
	}
	return txn, true, nil
}

// parseLooseAmount keeps only sign, digits and the decimal point, so
// "$1,234.50" and "1234.50 USD" both parse. An empty result is zero.
func parseLooseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == '-' || r == '.' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}

func parseLooseDate(s string) (time.Time, error) {
	for _, layout := range genericDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing date %q: unrecognised format", s)
}
