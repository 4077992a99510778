package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/go-petr/pet-ledger/internal/domain"
)

func newAccountsCmd(configPath *string) *cobra.Command {
	var arg struct {
		accountType string
		name        string
	}

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List accounts with balances",
		Long: `List accounts with balances.

Examples:
  petledger accounts                   # All accounts
  petledger accounts --type savings    # Only savings accounts
  petledger accounts --name invest     # Name contains "invest", any case`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if arg.accountType != "" && !domain.IsSupportedAccountType(arg.accountType) {
				return fmt.Errorf("%w: %q", domain.ErrInvalidAccountType, arg.accountType)
			}

			a, ctx, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.close()

			accounts := a.ledger.ListAccounts(ctx, domain.ListAccountsParams{
				Type: domain.AccountType(arg.accountType),
				Name: arg.name,
			})

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tBALANCE")

			for _, acc := range accounts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", acc.ID, acc.Name, acc.Type, acc.Balance.StringFixed(2))
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&arg.accountType, "type", "", "Filter by account type")
	cmd.Flags().StringVar(&arg.name, "name", "", "Filter by case-insensitive name substring")

	return cmd
}
