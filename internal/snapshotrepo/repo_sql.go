package snapshotrepo

import (
	"context"
	"fmt"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"
	"github.com/rs/zerolog"
)

// sqlRepo keeps snapshot documents in the ledger_state key-value table.
type sqlRepo struct {
	db          dbpkg.DB
	upsertQuery string
}

const loadQuery = `
SELECT key, value
FROM ledger_state
`

func (r *sqlRepo) load(ctx context.Context) (domain.Snapshot, bool, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, loadQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Snapshot{}, false, fmt.Errorf("query ledger state: %w", err)
	}
	defer rows.Close()

	docs := map[string][]byte{}

	for rows.Next() {
		var (
			key   string
			value string
		)

		if err := rows.Scan(&key, &value); err != nil {
			l.Error().Err(err).Send()
			return domain.Snapshot{}, false, fmt.Errorf("scan ledger state: %w", err)
		}

		docs[key] = []byte(value)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return domain.Snapshot{}, false, fmt.Errorf("iterate ledger state: %w", err)
	}

	return decode(docs)
}

// save writes all three documents in one transaction.
func (r *sqlRepo) save(ctx context.Context, s domain.Snapshot) error {
	l := zerolog.Ctx(ctx)

	docs, err := encode(s)
	if err != nil {
		return err
	}

	err = dbpkg.ExecTx(ctx, r.db, func(q dbpkg.SQLInterface) error {
		for _, key := range []string{KeyAccounts, KeyTransfers, KeyLoans} {
			if _, err := q.ExecContext(ctx, r.upsertQuery, key, string(docs[key])); err != nil {
				return fmt.Errorf("upsert %s: %w", key, err)
			}
		}

		return nil
	})
	if err != nil {
		l.Error().Err(err).Send()
		return err
	}

	return nil
}

const upsertQueryPGS = `
INSERT INTO
    ledger_state (key, value, updated_at)
VALUES
    ($1, $2, now())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
`

// RepoPGS stores the snapshot in PostgreSQL. Works with both lib/pq and pgx stdlib handles.
type RepoPGS struct {
	sqlRepo
}

// NewRepoPGS returns snapshot RepoPGS.
func NewRepoPGS(db dbpkg.DB) *RepoPGS {
	return &RepoPGS{sqlRepo{db: db, upsertQuery: upsertQueryPGS}}
}

// Load returns the stored snapshot. The bool is false if the table is empty.
func (r *RepoPGS) Load(ctx context.Context) (domain.Snapshot, bool, error) {
	return r.load(ctx)
}

// Save replaces the stored snapshot.
func (r *RepoPGS) Save(ctx context.Context, s domain.Snapshot) error {
	return r.save(ctx, s)
}

const upsertQuerySQLite = `
INSERT INTO
    ledger_state (key, value, updated_at)
VALUES
    (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (key) DO UPDATE
SET value = excluded.value, updated_at = excluded.updated_at
`

// RepoSQLite stores the snapshot in a SQLite database file.
type RepoSQLite struct {
	sqlRepo
}

// NewRepoSQLite returns snapshot RepoSQLite.
func NewRepoSQLite(db dbpkg.DB) *RepoSQLite {
	return &RepoSQLite{sqlRepo{db: db, upsertQuery: upsertQuerySQLite}}
}

// Load returns the stored snapshot. The bool is false if the table is empty.
func (r *RepoSQLite) Load(ctx context.Context) (domain.Snapshot, bool, error) {
	return r.load(ctx)
}

// Save replaces the stored snapshot.
func (r *RepoSQLite) Save(ctx context.Context, s domain.Snapshot) error {
	return r.save(ctx, s)
}
