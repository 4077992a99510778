package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/loanservice"
)

func newLoansCmd(configPath *string) *cobra.Command {
	loansCmd := &cobra.Command{
		Use:   "loans",
		Short: "Inspect loans",
	}

	dueCmd := &cobra.Command{
		Use:   "due [loan-id]",
		Short: "Show total repayment due",
		Long: `Show outstanding amount plus simple interest for every loan, or for one loan.

Examples:
  petledger loans due        # All loans
  petledger loans due 1      # Loan with id 1`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.close()

			var loans []domain.Loan

			if len(args) == 1 {
				loan, err := a.ledger.GetLoan(ctx, args[0])
				if err != nil {
					return err
				}

				loans = append(loans, loan)
			} else {
				loans = a.ledger.ListLoans(ctx)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLENDER\tBORROWER\tOUTSTANDING\tTERM\tRATE\tTOTAL DUE")

			for _, l := range loans {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s%%\t%s\n",
					l.ID,
					l.SourceAccountID,
					l.RecipientAccountID,
					l.Amount.StringFixed(2),
					l.Term,
					l.InterestRate.String(),
					loanservice.TotalRepaymentDue(l).StringFixed(2),
				)
			}

			return w.Flush()
		},
	}

	loansCmd.AddCommand(dueCmd)

	return loansCmd
}
