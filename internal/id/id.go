// Package id formats and parses the identifiers stored in the ledger and
// accounts files.
package id

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// FormatTxnID returns a transaction ID like "2025-01-001".
func FormatTxnID(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// ParseTxnID parses "2025-01-001" into year, month, seq.
func ParseTxnID(id string) (year, month, seq int, err error) {
	parts := strings.SplitN(id, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid transaction ID format: %q", id)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in transaction ID %q: %w", id, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month in transaction ID %q: %w", id, err)
	}
	if month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("month out of range in transaction ID %q", id)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in transaction ID %q: %w", id, err)
	}
	if seq < 1 {
		return 0, 0, 0, fmt.Errorf("sequence must be positive in transaction ID %q", id)
	}

	return year, month, seq, nil
}

// NewAccountID returns a fresh random account identifier.
func NewAccountID() string {
	return "acc-" + uuid.NewString()
}
