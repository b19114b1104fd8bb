package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cashcare-dev/cashcare/internal/analytics"
	"github.com/cashcare-dev/cashcare/internal/ledger"
	"github.com/cashcare-dev/cashcare/internal/log"
)

const dateLayout = "2006-01-02"

func newDashboardCommand() *cobra.Command {
	var asOf string
	var format string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Summarize balances, spending and savings for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseAsOf(asOf)
			if err != nil {
				return err
			}
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format %q: use text or json", format)
			}

			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			acctSvc, err := w.loadAccounts()
			if err != nil {
				return err
			}
			txns, err := ledger.NewService(w.root, acctSvc).ReadAll()
			if err != nil {
				return err
			}

			d := w.cfg.Dashboard
			dash := analytics.Aggregate(txns, acctSvc.All(), ref, analytics.Options{
				TrailingMonths:   d.TrailingMonths,
				TopCategories:    d.TopCategories,
				ReportMonths:     d.ReportMonths,
				ProjectionMonths: d.ProjectionMonths,
			})
			w.logger.WithComponent(log.ComponentDashboard).Debug("aggregated",
				log.FieldOperation, log.OpAggregate,
				log.FieldMonth, ref.Format("2006-01"),
				log.FieldCount, len(txns),
			)

			if format == "json" {
				return writeJSON(cmd.OutOrStdout(), dash)
			}
			return writeDashboard(cmd.OutOrStdout(), dash, w.cfg.Profile.Currency)
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "reference date YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")

	return cmd
}

// parseAsOf reads --as-of. The CLI is the only place that reads the clock.
func parseAsOf(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

func writeJSON(out io.Writer, v any) error {
	decimal.MarshalJSONWithoutQuotes = true
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeDashboard(out io.Writer, dash analytics.Dashboard, currency string) error {
	money := func(d decimal.Decimal) string {
		if currency == "" {
			return d.StringFixed(2)
		}
		return d.StringFixed(2) + " " + currency
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	s := dash.Stats
	fmt.Fprintf(tw, "Total balance\t%s\n", money(s.TotalBalance))
	fmt.Fprintf(tw, "Income this month\t%s\n", money(s.MonthlyIncome))
	fmt.Fprintf(tw, "Expenses this month\t%s\n", money(s.MonthlyExpenses))
	fmt.Fprintf(tw, "Savings rate\t%.1f%%\n", s.SavingsRate)
	r := dash.SpendingRate
	fmt.Fprintf(tw, "Spending trend\t%s %.1f%%\n", r.Direction, r.ChangePercent)
	h := dash.Health
	fmt.Fprintf(tw, "Health score\t%d (%s)\n", h.Score, h.Category)

	fmt.Fprintln(tw, "\nMONTH\tINCOME\tEXPENSES\tSAVINGS")
	for _, m := range dash.Monthly {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Key, m.Income.StringFixed(2), m.Expenses.StringFixed(2), m.Savings.StringFixed(2))
	}

	if len(dash.CategorySpend) > 0 {
		fmt.Fprintln(tw, "\nCATEGORY\tAMOUNT\tSHARE")
		for _, c := range dash.CategorySpend {
			fmt.Fprintf(tw, "%s\t%s\t%d%%\n", c.Category, c.Amount.StringFixed(2), c.Percentage)
		}
	}

	if len(dash.IncomeBreakdown) > 0 {
		fmt.Fprintln(tw, "\nINCOME SOURCE\tAMOUNT\tSHARE")
		for _, src := range dash.IncomeBreakdown {
			fmt.Fprintf(tw, "%s\t%s\t%d%%\n", src.Name, src.Amount.StringFixed(2), src.Percentage)
		}
	}

	fmt.Fprintln(tw, "\nINSIGHTS")
	for _, card := range dash.Insights {
		fmt.Fprintf(tw, "[%s] %s\t%s\n", card.Severity, card.Title, card.Message)
	}
	return tw.Flush()
}
