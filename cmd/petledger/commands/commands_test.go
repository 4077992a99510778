package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/snapshotrepo"
)

// setupConfig writes app.env pointing the file backend into a temp dir.
func setupConfig(t *testing.T) (configDir, snapshotFile string) {
	t.Helper()

	dir := t.TempDir()
	snapshotFile = filepath.Join(dir, "data", "ledger.json")

	env := fmt.Sprintf("GO_ENV=test\nDATA_BACKEND=file\nSNAPSHOT_FILE=%s\nSEED_SAMPLE_DATA=true\n", snapshotFile)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(env), 0o600))

	return dir, snapshotFile
}

func run(t *testing.T, configDir string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", configDir))

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestSnapshotFlushSeedsEmptyBackend(t *testing.T) {
	configDir, snapshotFile := setupConfig(t)

	out, err := run(t, configDir, "snapshot", "flush")
	require.NoError(t, err)
	require.Contains(t, out, "3 accounts, 2 transfers, 1 loans")

	snap, found, err := snapshotrepo.NewRepoFile(snapshotFile).Load(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, snap.Accounts, 3)
}

func TestAccountsCmd(t *testing.T) {
	configDir, _ := setupConfig(t)

	testCases := []struct {
		name        string
		args        []string
		wantErr     error
		wantContain []string
		wantMissing []string
	}{
		{
			name:        "All",
			args:        []string{"accounts"},
			wantContain: []string{"My Savings", "My Checking", "My Investment", "2000.00"},
		},
		{
			name:        "ByType",
			args:        []string{"accounts", "--type", "savings"},
			wantContain: []string{"My Savings", "1000.00"},
			wantMissing: []string{"My Checking"},
		},
		{
			name:        "ByName",
			args:        []string{"accounts", "--name", "INVEST"},
			wantContain: []string{"My Investment"},
			wantMissing: []string{"My Savings"},
		},
		{
			name:    "UnsupportedType",
			args:    []string{"accounts", "--type", "crypto"},
			wantErr: domain.ErrInvalidAccountType,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, configDir, tc.args...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)

			for _, s := range tc.wantContain {
				require.Contains(t, out, s)
			}

			for _, s := range tc.wantMissing {
				require.NotContains(t, out, s)
			}
		})
	}
}

func TestLoansDueCmd(t *testing.T) {
	configDir, _ := setupConfig(t)

	out, err := run(t, configDir, "loans", "due", "1")
	require.NoError(t, err)
	require.Contains(t, out, "TOTAL DUE")
	require.Contains(t, out, "105.00")

	_, err = run(t, configDir, "loans", "due", "42")
	require.ErrorIs(t, err, domain.ErrLoanNotFound)
}

func TestLedgerOptions(t *testing.T) {
	configDir, _ := setupConfig(t)

	a, _, err := newApp(context.Background(), configDir)
	require.NoError(t, err)
	defer a.close()

	opts, err := ledgerOptions(a.config)
	require.NoError(t, err)
	require.Equal(t, 12, opts.Defaults.Term)
	require.Equal(t, "5", opts.Defaults.InterestRate.String())
	require.Equal(t, domain.RepayCreditsRecipient, opts.RepayMode)
	require.False(t, opts.CascadeLoans)
	require.True(t, opts.SeedSampleData)
}
