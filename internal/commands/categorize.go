package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cashcare-dev/cashcare/internal/categorize"
)

func newCategorizeCommand() *cobra.Command {
	var builtinOnly bool

	cmd := &cobra.Command{
		Use:   "categorize <description...>",
		Short: "Print the category for a transaction description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := categorize.Default()
			if !builtinOnly {
				w, err := openWorkspace(cmd)
				if err != nil {
					return err
				}
				rules, err := categorize.LoadRules(w.rulesPath())
				if err != nil {
					return err
				}
				c = categorize.WithRules(rules)
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.Categorize(strings.Join(args, " ")))
			return nil
		},
	}

	cmd.Flags().BoolVar(&builtinOnly, "builtin", false, "ignore the repo's custom rules")

	return cmd
}
