package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashcare-dev/cashcare/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "id,date,account,description,amount,category,merchant,currency,reference"

const (
	numFields  = 9
	dateFormat = "2006-01-02"
	colID      = 0
	colDate    = 1
	colAccount = 2
	colDesc    = 3
	colAmount  = 4
	colCat     = 5
	colMerch   = 6
	colCurr    = 7
	colRef     = 8
)

// ReadTransactions reads all rows from a transactions.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes txns to a transactions.csv writer (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendTransactions appends rows to an existing transactions.csv writer (no header).
func AppendTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row. The amount is
// always written signed.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = txn.ID
	row[colDate] = txn.Date.Format(dateFormat)
	row[colAccount] = txn.AccountRef
	row[colDesc] = txn.Description
	row[colAmount] = txn.Signed().StringFixed(2)
	row[colCat] = string(txn.Category)
	row[colMerch] = txn.Merchant
	row[colCurr] = txn.Currency
	row[colRef] = txn.Reference
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction. An unknown
// category is kept verbatim so validation can report it.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	cat, err := model.ParseCategory(record[colCat])
	if err != nil {
		cat = model.Category(record[colCat])
	}

	return model.Transaction{
		ID:          record[colID],
		Date:        date,
		AccountRef:  record[colAccount],
		Description: record[colDesc],
		Amount:      amount,
		Category:    cat,
		Merchant:    record[colMerch],
		Currency:    record[colCurr],
		Reference:   record[colRef],
	}, nil
}
