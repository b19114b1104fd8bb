package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cashcare-dev/cashcare/internal/accounts"
	"github.com/cashcare-dev/cashcare/internal/auditlog"
	"github.com/cashcare-dev/cashcare/internal/categorize"
	"github.com/cashcare-dev/cashcare/internal/importer"
	"github.com/cashcare-dev/cashcare/internal/ledger"
	"github.com/cashcare-dev/cashcare/internal/log"
	"github.com/cashcare-dev/cashcare/internal/model"
)

func newImportCommand() *cobra.Command {
	var format string
	var account string

	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import bank CSV exports into the ledger",
		Long: "Import bank CSV exports into the ledger. Without arguments every CSV " +
			"in the import/ drop box is imported and moved to import/processed/.",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			if format == "" {
				format = w.cfg.Import.DefaultFormat
			}
			if account == "" {
				account = w.cfg.Import.DefaultAccount
			}

			var files []importer.FileInfo
			fromDropBox := len(args) == 0
			if fromDropBox {
				files, err = importer.Scan(w.root)
				if err != nil {
					return err
				}
			} else {
				for _, arg := range args {
					files = append(files, importer.FileInfo{Name: filepath.Base(arg), Path: arg})
				}
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to import")
				return nil
			}

			imp, err := newImportRun(w, format, account)
			if err != nil {
				return err
			}

			var failed int
			for _, f := range files {
				n, err := imp.file(cmd, f)
				if err != nil {
					failed++
					w.logger.Error("import failed", log.FieldFile, f.Name, log.FieldError, err)
					continue
				}
				if fromDropBox {
					if err := importer.MarkProcessed(w.root, f.Name); err != nil {
						return err
					}
				}
				w.logger.Debug("file imported", log.FieldFile, f.Name, log.FieldCount, n)
			}

			if err := auditlog.Append(w.root, imp.entries); err != nil {
				return err
			}
			if imp.total > 0 {
				w.commitChanges(cmd.Context(), fmt.Sprintf("import: %d transactions", imp.total))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to import", failed, len(files))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "CSV format: chase or generic (defaults to import.default_format)")
	cmd.Flags().StringVar(&account, "account", "", "account id or name for rows without one (defaults to import.default_account)")

	return cmd
}

// importRun carries state across the files of one import invocation so
// duplicates between files are caught too.
type importRun struct {
	w          *workspace
	logger     *log.Logger
	format     string
	account    string
	registry   *importer.Registry
	accounts   *accounts.Service
	ledger     *ledger.Service
	categories *categorize.Categorizer
	existing   []model.Transaction
	entries    []auditlog.Entry
	total      int
}

func newImportRun(w *workspace, format, account string) (*importRun, error) {
	acctSvc, err := w.loadAccounts()
	if err != nil {
		return nil, err
	}
	ledgerSvc := ledger.NewService(w.root, acctSvc)
	existing, err := ledgerSvc.ReadAll()
	if err != nil {
		return nil, err
	}
	rules, err := categorize.LoadRules(w.rulesPath())
	if err != nil {
		return nil, err
	}

	return &importRun{
		w:          w,
		logger:     w.logger.WithComponent(log.ComponentImport).With(log.FieldFormat, format),
		format:     format,
		account:    account,
		registry:   importer.DefaultRegistry(),
		accounts:   acctSvc,
		ledger:     ledgerSvc,
		categories: categorize.WithRules(rules),
		existing:   existing,
	}, nil
}

// file imports one CSV and records the outcome in the audit log.
func (r *importRun) file(cmd *cobra.Command, f importer.FileInfo) (int, error) {
	n, skipped, err := r.importFile(f)
	entry := auditlog.Entry{
		Timestamp: time.Now(),
		Source:    f.Name,
		Format:    r.format,
		Action:    auditlog.ActionImported,
		Count:     n,
		Details:   fmt.Sprintf("%d duplicates skipped", skipped),
	}
	switch {
	case err != nil:
		entry.Action = auditlog.ActionFailed
		entry.Details = err.Error()
	case n == 0:
		entry.Action = auditlog.ActionSkipped
	}
	r.entries = append(r.entries, entry)
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions from %s (%d duplicates skipped)\n", n, f.Name, skipped)
	return n, nil
}

func (r *importRun) importFile(f importer.FileInfo) (int, int, error) {
	txns, err := r.registry.ParseFile(r.format, f.Path)
	if err != nil {
		return 0, 0, err
	}

	for i := range txns {
		if txns[i].AccountRef == "" {
			if r.account == "" {
				return 0, 0, fmt.Errorf("%s has rows without an account: pass --account", f.Name)
			}
			txns[i].AccountRef = r.account
		}
		if a, ok := r.accounts.Resolve(txns[i].AccountRef); ok {
			txns[i].AccountRef = a.ID
			if txns[i].Currency == "" {
				txns[i].Currency = a.Currency
			}
		}
		if txns[i].Currency == "" {
			txns[i].Currency = r.w.cfg.Profile.Currency
		}
	}

	categorized := r.categories.Apply(txns)
	fresh, skipped := ledger.Deduplicate(r.existing, txns)
	r.logger.Debug("parsed",
		log.FieldFile, f.Name,
		log.FieldCount, len(txns),
		log.FieldSkipped, skipped,
		"categorized", categorized,
	)
	if len(fresh) == 0 {
		return 0, skipped, nil
	}

	if _, err := r.ledger.Append(fresh); err != nil {
		return 0, skipped, fmt.Errorf("appending %s: %w", f.Name, err)
	}
	r.existing = append(r.existing, fresh...)
	r.total += len(fresh)
	return len(fresh), skipped, nil
}
