// Package auditlog keeps the append-only record of imports in
// logs/import-log.csv.
package auditlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Actions recorded by the import command.
const (
	ActionImported = "imported"
	ActionSkipped  = "skipped"
	ActionFailed   = "failed"
)

// Entry is one row in the import log.
type Entry struct {
	Timestamp time.Time
	Source    string // file name
	Format    string
	Action    string
	Count     int
	Details   string
}

// Header is the CSV header for import-log.csv.
const Header = "timestamp,source,format,action,count,details"

const (
	numFields    = 6
	logDir       = "logs"
	logFile      = "logs/import-log.csv"
	colTimestamp = 0
	colSource    = 1
	colFormat    = 2
	colAction    = 3
	colCount     = 4
	colDetails   = 5
)

// Path returns the import log under a repo root.
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, logFile)
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.UTC().Format(time.RFC3339)
	row[colSource] = e.Source
	row[colFormat] = e.Format
	row[colAction] = e.Action
	row[colCount] = strconv.Itoa(e.Count)
	row[colDetails] = e.Details
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	count, err := strconv.Atoi(record[colCount])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing count %q: %w", record[colCount], err)
	}

	return Entry{
		Timestamp: ts,
		Source:    record[colSource],
		Format:    record[colFormat],
		Action:    record[colAction],
		Count:     count,
		Details:   record[colDetails],
	}, nil
}

// Append writes entries to <repoRoot>/logs/import-log.csv, creating the file and header if needed.
func Append(repoRoot string, entries []Entry) error {
	dir := filepath.Join(repoRoot, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := Path(repoRoot)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <repoRoot>/logs/import-log.csv.
// Returns nil if the file does not exist.
func Read(repoRoot string) ([]Entry, error) {
	f, err := os.Open(Path(repoRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
