package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cashcare-dev/cashcare/internal/calc"
)

func newCalcCommand() *cobra.Command {
	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "Financial calculators",
	}
	calcCmd.PersistentFlags().Bool("json", false, "print results as JSON")

	calcCmd.AddCommand(
		newCalcSIPCommand(),
		newCalcLumpsumCommand(),
		newCalcLoanCommand(),
		newCalcRetirementCommand(),
		newCalcInsuranceCommand(),
		newCalcTaxCommand(),
		newCalcGoalCommand(),
	)
	return calcCmd
}

// printResult writes v as JSON when --json is set, otherwise as label/value rows.
func printResult(cmd *cobra.Command, v any, rows [][2]string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), v)
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1])
	}
	return tw.Flush()
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func growthRows(g calc.Growth) [][2]string {
	return [][2]string{
		{"Invested", money(g.Invested)},
		{"Returns", money(g.Returns)},
		{"Total value", money(g.TotalValue)},
	}
}

func writeSchedule(out io.Writer, points []calc.YearPoint) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "YEAR\tINVESTED\tVALUE")
	for _, p := range points {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", p.Year, money(p.Invested), money(p.Value))
	}
	return tw.Flush()
}

func newCalcSIPCommand() *cobra.Command {
	var monthly, rate float64
	var years int
	var schedule bool

	cmd := &cobra.Command{
		Use:   "sip",
		Short: "Future value of a monthly investment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if schedule {
				points, err := calc.SIPSchedule(monthly, rate, years)
				if err != nil {
					return err
				}
				if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
					return writeJSON(cmd.OutOrStdout(), points)
				}
				return writeSchedule(cmd.OutOrStdout(), points)
			}
			g, err := calc.SIPFutureValue(monthly, rate, years)
			if err != nil {
				return err
			}
			return printResult(cmd, g, growthRows(g))
		},
	}

	cmd.Flags().Float64Var(&monthly, "monthly", 0, "monthly investment")
	cmd.Flags().Float64Var(&rate, "rate", 12, "expected annual return in percent")
	cmd.Flags().IntVar(&years, "years", 10, "investment period in years")
	cmd.Flags().BoolVar(&schedule, "schedule", false, "print the value at the end of each year")
	_ = cmd.MarkFlagRequired("monthly")

	return cmd
}

func newCalcLumpsumCommand() *cobra.Command {
	var principal, rate float64
	var years int
	var schedule bool

	cmd := &cobra.Command{
		Use:   "lumpsum",
		Short: "Future value of a one-time investment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if schedule {
				points, err := calc.LumpsumSchedule(principal, rate, years)
				if err != nil {
					return err
				}
				if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
					return writeJSON(cmd.OutOrStdout(), points)
				}
				return writeSchedule(cmd.OutOrStdout(), points)
			}
			g, err := calc.LumpsumFutureValue(principal, rate, years)
			if err != nil {
				return err
			}
			return printResult(cmd, g, growthRows(g))
		},
	}

	cmd.Flags().Float64Var(&principal, "principal", 0, "amount invested today")
	cmd.Flags().Float64Var(&rate, "rate", 12, "expected annual return in percent")
	cmd.Flags().IntVar(&years, "years", 10, "investment period in years")
	cmd.Flags().BoolVar(&schedule, "schedule", false, "print the value at the end of each year")
	_ = cmd.MarkFlagRequired("principal")

	return cmd
}

func newCalcLoanCommand() *cobra.Command {
	var principal, rate float64
	var years int

	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Monthly instalment of an amortizing loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := calc.LoanEMI(principal, rate, years)
			if err != nil {
				return err
			}
			return printResult(cmd, l, [][2]string{
				{"EMI", money(l.EMI)},
				{"Total payment", money(l.TotalPayment)},
				{"Total interest", money(l.TotalInterest)},
			})
		},
	}

	cmd.Flags().Float64Var(&principal, "principal", 0, "loan amount")
	cmd.Flags().Float64Var(&rate, "rate", 8.5, "annual interest rate in percent")
	cmd.Flags().IntVar(&years, "years", 20, "tenure in years")
	_ = cmd.MarkFlagRequired("principal")

	return cmd
}

func newCalcRetirementCommand() *cobra.Command {
	var monthly, rate float64
	var years int

	cmd := &cobra.Command{
		Use:   "retirement",
		Short: "Corpus built by monthly saving until retirement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := calc.RetirementCorpus(monthly, rate, years)
			if err != nil {
				return err
			}
			return printResult(cmd, map[string]float64{"corpus": corpus}, [][2]string{
				{"Corpus", money(corpus)},
			})
		},
	}

	cmd.Flags().Float64Var(&monthly, "monthly", 0, "monthly saving")
	cmd.Flags().Float64Var(&rate, "rate", 10, "expected annual return in percent")
	cmd.Flags().IntVar(&years, "years", 25, "years until retirement")
	_ = cmd.MarkFlagRequired("monthly")

	return cmd
}

func newCalcInsuranceCommand() *cobra.Command {
	var income, liabilities float64
	var age, dependents int

	cmd := &cobra.Command{
		Use:   "insurance",
		Short: "Recommended life cover",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cover, err := calc.RecommendedInsuranceCoverage(income, age, dependents, liabilities)
			if err != nil {
				return err
			}
			return printResult(cmd, map[string]float64{"coverage": cover}, [][2]string{
				{"Recommended cover", money(cover)},
				{"Income multiple", fmt.Sprintf("%gx", calc.AgeMultiplier(age))},
			})
		},
	}

	cmd.Flags().Float64Var(&income, "income", 0, "annual income")
	cmd.Flags().IntVar(&age, "age", 30, "age in years")
	cmd.Flags().IntVar(&dependents, "dependents", 0, "number of dependents")
	cmd.Flags().Float64Var(&liabilities, "liabilities", 0, "outstanding debts")
	_ = cmd.MarkFlagRequired("income")

	return cmd
}

func newCalcTaxCommand() *cobra.Command {
	var income, deductions string

	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Estimate income tax from the bracket table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inc, err := decimal.NewFromString(income)
			if err != nil {
				return fmt.Errorf("invalid income %q: %w", income, err)
			}
			ded, err := decimal.NewFromString(deductions)
			if err != nil {
				return fmt.Errorf("invalid deductions %q: %w", deductions, err)
			}
			est, err := calc.EstimateTax(inc, ded)
			if err != nil {
				return err
			}
			return printResult(cmd, est, [][2]string{
				{"Taxable income", est.TaxableIncome.StringFixed(2)},
				{"Tax", est.Tax.StringFixed(2)},
				{"Effective rate", fmt.Sprintf("%.2f%%", est.EffectiveRatePercent)},
			})
		},
	}

	cmd.Flags().StringVar(&income, "income", "", "gross annual income")
	cmd.Flags().StringVar(&deductions, "deductions", "0", "total deductions")
	_ = cmd.MarkFlagRequired("income")

	return cmd
}

func newCalcGoalCommand() *cobra.Command {
	var cost, inflation float64
	var years int

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Monthly saving needed for an inflation-adjusted goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := calc.InflationAdjustedGoal(cost, years, inflation)
			if err != nil {
				return err
			}
			return printResult(cmd, g, [][2]string{
				{"Future cost", money(g.FutureCost)},
				{"Monthly saving", money(g.MonthlySavingsNeeded)},
			})
		},
	}

	cmd.Flags().Float64Var(&cost, "cost", 0, "cost of the goal today")
	cmd.Flags().IntVar(&years, "years", 5, "years until the goal")
	cmd.Flags().Float64Var(&inflation, "inflation", 6, "annual inflation in percent")
	_ = cmd.MarkFlagRequired("cost")

	return cmd
}
