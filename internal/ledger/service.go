// Package ledger stores transactions as one CSV file per calendar month
// under YYYY/MM/transactions.csv.
package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/cashcare-dev/cashcare/internal/id"
	"github.com/cashcare-dev/cashcare/internal/model"
)

// FileName is the name of each month's ledger file.
const FileName = "transactions.csv"

// Service reads and appends ledger files under a repo root.
type Service struct {
	repoRoot string
	accounts AccountChecker
}

// NewService creates a ledger Service.
func NewService(repoRoot string, accounts AccountChecker) *Service {
	return &Service{repoRoot: repoRoot, accounts: accounts}
}

type monthBatch struct {
	year, month int
	existing    []model.Transaction
	added       []model.Transaction
}

// Append assigns IDs to txns, validates every affected month and writes the
// new rows. Amounts are stored signed. Nothing is written if any month
// fails validation. Returns the assigned IDs in input order.
func (s *Service) Append(txns []model.Transaction) ([]string, error) {
	batches := make(map[[2]int]*monthBatch)
	var order [][2]int
	ids := make([]string, len(txns))

	for i, txn := range txns {
		k := [2]int{txn.Date.Year(), int(txn.Date.Month())}
		b, ok := batches[k]
		if !ok {
			existing, err := s.ReadMonth(k[0], k[1])
			if err != nil {
				return nil, err
			}
			b = &monthBatch{year: k[0], month: k[1], existing: existing}
			batches[k] = b
			order = append(order, k)
		}

		seq := nextSeq(b.existing) + len(b.added)
		txn = txn.Canonical()
		txn.ID = id.FormatTxnID(k[0], k[1], seq)
		b.added = append(b.added, txn)
		ids[i] = txn.ID
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i][0] != order[j][0] {
			return order[i][0] < order[j][0]
		}
		return order[i][1] < order[j][1]
	})

	var all ValidationErrors
	for _, k := range order {
		b := batches[k]
		rows := append(append([]model.Transaction{}, b.existing...), b.added...)
		all = append(all, ValidateTransactions(rows, s.accounts, b.year, b.month)...)
	}
	if len(all) > 0 {
		return nil, all
	}

	for _, k := range order {
		b := batches[k]
		if err := s.appendMonth(b.year, b.month, b.added); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

func (s *Service) appendMonth(year, month int, txns []model.Transaction) error {
	path := s.MonthPath(year, month)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendTransactions(f, txns); err != nil {
		return fmt.Errorf("appending transactions: %w", err)
	}
	return nil
}

// ReadMonth reads all transactions for a given year/month. A missing file
// is an empty month.
func (s *Service) ReadMonth(year, month int) ([]model.Transaction, error) {
	path := s.MonthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	return txns, nil
}

// Months lists the months that have a ledger file, oldest first, as
// [year, month] pairs.
func (s *Service) Months() ([][2]int, error) {
	matches, err := filepath.Glob(filepath.Join(s.repoRoot, "[0-9][0-9][0-9][0-9]", "[0-9][0-9]", FileName))
	if err != nil {
		return nil, fmt.Errorf("listing ledger files: %w", err)
	}
	sort.Strings(matches)

	var months [][2]int
	for _, m := range matches {
		monthDir := filepath.Dir(m)
		year, err := strconv.Atoi(filepath.Base(filepath.Dir(monthDir)))
		if err != nil {
			continue
		}
		month, err := strconv.Atoi(filepath.Base(monthDir))
		if err != nil || month < 1 || month > 12 {
			continue
		}
		months = append(months, [2]int{year, month})
	}
	return months, nil
}

// ReadAll reads every month's transactions in chronological file order.
func (s *Service) ReadAll() ([]model.Transaction, error) {
	months, err := s.Months()
	if err != nil {
		return nil, err
	}

	var all []model.Transaction
	for _, m := range months {
		txns, err := s.ReadMonth(m[0], m[1])
		if err != nil {
			return nil, err
		}
		all = append(all, txns...)
	}
	return all, nil
}

// NextSeq returns the next available sequence number for a month.
func (s *Service) NextSeq(year, month int) (int, error) {
	txns, err := s.ReadMonth(year, month)
	if err != nil {
		return 0, err
	}
	return nextSeq(txns), nil
}

func nextSeq(txns []model.Transaction) int {
	maxSeq := 0
	for _, txn := range txns {
		_, _, seq, err := id.ParseTxnID(txn.ID)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}

// MonthPath returns the ledger file for a given year/month.
func (s *Service) MonthPath(year, month int) string {
	return filepath.Join(s.repoRoot, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), FileName)
}
