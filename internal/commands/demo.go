package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cashcare-dev/cashcare/internal/accounts"
	"github.com/cashcare-dev/cashcare/internal/demo"
	"github.com/cashcare-dev/cashcare/internal/ledger"
	"github.com/cashcare-dev/cashcare/internal/log"
	"github.com/cashcare-dev/cashcare/internal/model"
)

func newDemoCommand() *cobra.Command {
	var seed int64
	var months int
	var asOf string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Fill the repo with sample accounts and transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseAsOf(asOf)
			if err != nil {
				return err
			}
			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			logger := w.logger.WithComponent(log.ComponentDemo).With(log.FieldOperation, log.OpGenerate)

			acctSvc, err := w.loadAccounts()
			if err != nil {
				return err
			}
			if len(acctSvc.All()) == 0 {
				currency := w.cfg.Profile.Currency
				if currency == "" {
					currency = demo.DefaultCurrency
				}
				acctSvc = accounts.NewService(accounts.DefaultAccounts(currency))
				if err := acctSvc.Save(w.root); err != nil {
					return err
				}
				logger.Debug("wrote default accounts", log.FieldCount, len(acctSvc.All()))
			}

			var generated []model.Transaction
			for i, a := range acctSvc.All() {
				generated = append(generated, demo.Generate(demo.Options{
					Seed:     seed + int64(i),
					Months:   months,
					Account:  a.ID,
					Currency: a.Currency,
					Ref:      ref,
				})...)
			}

			ledgerSvc := ledger.NewService(w.root, acctSvc)
			existing, err := ledgerSvc.ReadAll()
			if err != nil {
				return err
			}
			fresh, skipped := ledger.Deduplicate(existing, generated)
			if len(fresh) > 0 {
				if _, err := ledgerSvc.Append(fresh); err != nil {
					return err
				}
			}
			logger.Debug("generated", log.FieldCount, len(fresh), log.FieldSkipped, skipped)
			w.commitChanges(cmd.Context(), fmt.Sprintf("demo: %d sample transactions", len(fresh)))

			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d transactions across %d accounts\n", len(fresh), len(acctSvc.All()))
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", demo.DefaultSeed, "random seed; the same seed gives the same data")
	cmd.Flags().IntVar(&months, "months", demo.DefaultMonths, "months of history to generate")
	cmd.Flags().StringVar(&asOf, "as-of", "", "last day to generate, YYYY-MM-DD (defaults to today)")

	return cmd
}
