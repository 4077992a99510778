// Package commands defines the petledger command line.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd returns the petledger command tree.
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "petledger",
		Short: "Personal ledger of accounts, transfers and loans",
		Long: `petledger keeps account balances consistent with recorded transfers and loans.

Commands:
  serve           - Run the HTTP API
  accounts        - List accounts with balances
  loans due       - Show total repayment due per loan
  snapshot flush  - Write the current state to the configured backend`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./configs", "Directory holding app.env")

	rootCmd.AddCommand(
		newServeCmd(&configPath),
		newAccountsCmd(&configPath),
		newLoansCmd(&configPath),
		newSnapshotCmd(&configPath),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
