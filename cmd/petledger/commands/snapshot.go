package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSnapshotCmd(configPath *string) *cobra.Command {
	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage stored ledger state",
	}

	flushCmd := &cobra.Command{
		Use:   "flush",
		Short: "Write the current state to the configured backend",
		Long: `Load the ledger, seeding sample data when the backend is empty and seeding is on,
and save it again. Useful to initialize a fresh backend.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.ledger.Save(ctx); err != nil {
				return err
			}

			s := a.ledger.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "snapshot saved to %s backend: %d accounts, %d transfers, %d loans\n",
				a.config.DataBackend, len(s.Accounts), len(s.Transfers), len(s.Loans))

			return nil
		},
	}

	snapshotCmd.AddCommand(flushCmd)

	return snapshotCmd
}
