package snapshotrepo

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"

	// database/sql drivers selected by DB_DRIVER and DATA_BACKEND.
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Repo loads and saves whole ledger snapshots.
type Repo interface {
	Load(ctx context.Context) (domain.Snapshot, bool, error)
	Save(ctx context.Context, s domain.Snapshot) error
}

// Open returns the backend selected by DATA_BACKEND along with a function releasing its resources.
// SQL backends are migrated before being returned.
func Open(c configpkg.Config) (Repo, func() error, error) {
	noop := func() error { return nil }

	switch c.DataBackend {
	case configpkg.BackendMemory:
		return NewRepoMem(), noop, nil
	case configpkg.BackendFile:
		return NewRepoFile(c.SnapshotFile), noop, nil
	case configpkg.BackendSQLite:
		db, err := OpenSQLite(c.SQLitePath)
		if err != nil {
			return nil, nil, err
		}

		return NewRepoSQLite(db), db.Close, nil
	case configpkg.BackendPostgres:
		db, err := OpenPGS(c.DBDriver, c.DBSource)
		if err != nil {
			return nil, nil, err
		}

		return NewRepoPGS(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported data backend %q", c.DataBackend)
	}
}

// OpenSQLite opens the database file, creating its directory, and applies migrations.
func OpenSQLite(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	if err := MigrateSQLite(path); err != nil {
		return nil, err
	}

	db, err := dbpkg.Setup("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// A single connection keeps writes serialized on the file.
	db.SetMaxOpenConns(1)

	return db, nil
}

// OpenPGS connects through lib/pq ("postgres") or pgx stdlib ("pgx") and applies migrations.
func OpenPGS(driver, source string) (*sql.DB, error) {
	if err := MigratePGS(driver, source); err != nil {
		return nil, err
	}

	db, err := dbpkg.Setup(driver, source)
	if err != nil {
		return nil, fmt.Errorf("open postgres database: %w", err)
	}

	return db, nil
}
