package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashcare-dev/cashcare/internal/model"
)

func parseChaseFixture(t *testing.T) []model.Transaction {
	t.Helper()
	data, err := os.ReadFile("testdata/chase_checking.csv")
	require.NoError(t, err)

	p := &ChaseParser{}
	txns, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)
	return txns
}

func TestChaseParser_Parse(t *testing.T) {
	txns := parseChaseFixture(t)
	require.Len(t, txns, 6)

	assert.Equal(t, "GITHUB *PRO SUBSCRIPTION", txns[0].Description)
	assert.Equal(t, "-4.00", txns[0].Amount.StringFixed(2))
	assert.Empty(t, txns[0].Type, "chase amounts are signed")
	assert.Empty(t, txns[0].Category)
	assert.Equal(t, 2025, txns[0].Date.Year())
	assert.Equal(t, 1, int(txns[0].Date.Month()))
	assert.Equal(t, 3, txns[0].Date.Day())

	assert.Equal(t, "ACME CONSULTING INVOICE 1042", txns[3].Description)
	assert.True(t, txns[3].IsCredit())
	assert.Equal(t, "3500.00", txns[3].Amount.StringFixed(2))
}

func TestChaseParser_DateParsing(t *testing.T) {
	last := parseChaseFixture(t)[5]
	assert.Equal(t, 2025, last.Date.Year())
	assert.Equal(t, 1, int(last.Date.Month()))
	assert.Equal(t, 22, last.Date.Day())
}

func TestChaseParser_NegativePositiveAmounts(t *testing.T) {
	for _, txn := range parseChaseFixture(t) {
		if txn.Description == "ACME CONSULTING INVOICE 1042" {
			assert.True(t, txn.Amount.IsPositive())
		} else {
			assert.True(t, txn.Amount.IsNegative(), "expected negative for %s", txn.Description)
		}
	}
}

func TestChaseParser_EmptyFile(t *testing.T) {
	p := &ChaseParser{}
	txns, err := p.Parse(strings.NewReader("Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\n"))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestChaseParser_BadDate(t *testing.T) {
	csv := "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\nDEBIT,NOTADATE,desc,-4.00,ACH_DEBIT,100.00,\n"
	p := &ChaseParser{}
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestChaseParser_BadAmount(t *testing.T) {
	csv := "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\nDEBIT,01/03/2025,desc,NOTANUMBER,ACH_DEBIT,100.00,\n"
	p := &ChaseParser{}
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestChaseParser_Reference(t *testing.T) {
	txns := parseChaseFixture(t)
	assert.Equal(t, "chase_20250103_GITHUBPROS", txns[0].Reference)
	assert.Equal(t, "chase_20250122_NETFLIXCOM", txns[5].Reference)
}

func TestGenericParser_Parse(t *testing.T) {
	data, err := os.ReadFile("testdata/generic.csv")
	require.NoError(t, err)

	p := &GenericParser{}
	txns, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)
	require.Len(t, txns, 4, "zero amount and blank description rows are skipped")

	salary := txns[0]
	assert.Equal(t, "Salary March", salary.Description)
	assert.Equal(t, "85000.00", salary.Amount.StringFixed(2))
	assert.Equal(t, model.TxnCredit, salary.Type)
	assert.Equal(t, model.CategoryIncome, salary.Category)
	assert.Equal(t, "ACME", salary.Merchant)
	assert.Equal(t, "2025-03-01", salary.Date.Format("2006-01-02"))

	swiggy := txns[1]
	assert.Equal(t, model.TxnDebit, swiggy.Type)
	assert.True(t, swiggy.IsDebit())
	assert.Empty(t, swiggy.Category)
	assert.Equal(t, "2025-03-05", swiggy.Date.Format("2006-01-02"))

	bill := txns[2]
	assert.Empty(t, bill.Type)
	assert.Equal(t, model.CategoryUtilities, bill.Category)
	assert.True(t, bill.IsDebit())
	assert.Equal(t, "2025-03-07", bill.Date.Format("2006-01-02"))

	gift := txns[3]
	assert.Equal(t, model.TxnCredit, gift.Type)
	assert.Equal(t, "500", gift.Amount.String())
	assert.Empty(t, gift.Category, "unknown category left for the categorizer")
	assert.Equal(t, "2025-03-10", gift.Date.Format("2006-01-02"))
}

func TestGenericParser_PositionalFallback(t *testing.T) {
	csv := "when,what,how much\n2025-01-02,Coffee,-3.50\n"
	txns, err := (&GenericParser{}).Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "Coffee", txns[0].Description)
	assert.Equal(t, "-3.50", txns[0].Amount.StringFixed(2))
}

func TestGenericParser_Errors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want string
	}{
		{"bad date", "date,description,amount\nyesterday,Coffee,3\n", "parsing date"},
		{"bad amount", "date,description,amount\n2025-01-02,Coffee,1.2.3\n", "parsing amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&GenericParser{}).Parse(strings.NewReader(tt.csv))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "row 2")
		})
	}
}

func TestGenericParser_HeaderOnly(t *testing.T) {
	txns, err := (&GenericParser{}).Parse(strings.NewReader("date,description,amount\n"))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	p := r.Get("chase")
	require.NotNil(t, p)
	assert.Equal(t, "chase", p.Format())
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	assert.NotNil(t, r.Get("Chase"))
	assert.NotNil(t, r.Get("CHASE"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&GenericParser{})
	assert.Panics(t, func() { r.Register(&GenericParser{}) })
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"chase", "generic"}, r.Formats())
}

func TestRegistry_ParseFile(t *testing.T) {
	r := DefaultRegistry()

	txns, err := r.ParseFile("CHASE", "testdata/chase_checking.csv")
	require.NoError(t, err)
	assert.Len(t, txns, 6)

	_, err = r.ParseFile("ofx", "testdata/chase_checking.csv")
	assert.ErrorContains(t, err, `unknown import format "ofx"`)

	_, err = r.ParseFile("chase", "testdata/generic.csv")
	assert.ErrorContains(t, err, "parsing generic.csv as chase")

	_, err = r.ParseFile("chase", "testdata/missing.csv")
	assert.ErrorContains(t, err, "opening")
}

func TestScan_FindsCSVs(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(importDir, "bank.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(importDir, "other.txt"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Equal(t, "bank.csv", files[0].Name)
}

func TestScan_IgnoresProcessedDir(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	processedDir := filepath.Join(importDir, "processed")
	require.NoError(t, os.MkdirAll(processedDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(importDir, "new.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(processedDir, "old.csv"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Equal(t, "new.csv", files[0].Name)
}

func TestScan_EmptyDir(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(importDir, "bank.csv"), []byte("data"), 0o644))

	require.NoError(t, MarkProcessed(dir, "bank.csv"))

	_, err := os.Stat(filepath.Join(importDir, "bank.csv"))
	assert.True(t, os.IsNotExist(err))

	info, err := os.Stat(filepath.Join(dir, "import", "processed", "bank.csv"))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}
