package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cashcare-dev/cashcare/internal/log"
	"github.com/cashcare-dev/cashcare/internal/model"
)

func newAccountsCommand() *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "List and add bank accounts",
	}
	accountsCmd.AddCommand(newAccountsListCommand(), newAccountsAddCommand())
	return accountsCmd
}

func newAccountsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts and their balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			svc, err := w.loadAccounts()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTYPE\tBALANCE\tCURRENCY")
			for _, a := range svc.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Type, a.Balance.StringFixed(2), a.Currency)
			}
			fmt.Fprintf(tw, "\tTotal\t\t%s\t\n", svc.TotalBalance().StringFixed(2))
			return tw.Flush()
		},
	}
}

func newAccountsAddCommand() *cobra.Command {
	var (
		accountID   string
		name        string
		accountType string
		balance     string
		currency    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			svc, err := w.loadAccounts()
			if err != nil {
				return err
			}

			bal := decimal.Zero
			if balance != "" {
				bal, err = decimal.NewFromString(balance)
				if err != nil {
					return fmt.Errorf("invalid balance %q: %w", balance, err)
				}
			}
			if currency == "" {
				currency = w.cfg.Profile.Currency
			}

			added, err := svc.Add(model.Account{
				ID:       accountID,
				Name:     name,
				Type:     model.AccountType(accountType),
				Balance:  bal,
				Currency: currency,
			})
			if err != nil {
				return err
			}
			if err := svc.Save(w.root); err != nil {
				return err
			}
			w.logger.Debug("account added", log.FieldAccount, added.ID)
			w.commitChanges(cmd.Context(), "accounts: Add "+added.Name)

			fmt.Fprintf(cmd.OutOrStdout(), "Added account %s (%s)\n", added.Name, added.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "id", "", "account id (generated when empty)")
	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&accountType, "type", string(model.AccountTypeSavings), "savings, checking, credit_card, loan or investment")
	cmd.Flags().StringVar(&balance, "balance", "0", "opening balance")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code (defaults to the profile currency)")

	return cmd
}
