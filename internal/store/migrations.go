package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/raphi011/ggo/internal/ggoerr"
)

// ErrSchemaVersionTooNew is returned when the database was written by a
// newer ggo than this one.
var ErrSchemaVersionTooNew = errors.New("database schema version is newer than supported; upgrade ggo")

// Migration is one forward-only schema step.
type Migration struct {
	Version int
	Name    string
	Apply   func(ctx context.Context, tx *sql.Tx) error
}

// execAll returns an Apply func running each statement in order.
func execAll(stmts ...string) func(context.Context, *sql.Tx) error {
	return func(ctx context.Context, tx *sql.Tx) error {
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	}
}

const createLedger = `CREATE TABLE IF NOT EXISTS schema_version (
	version    INTEGER PRIMARY KEY,
	applied_at INTEGER NOT NULL
)`

// currentVersion returns the highest applied version, 0 for an empty ledger.
func currentVersion(ctx context.Context, db *sql.DB) (int, error) {
	var version int
	err := db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version)
	if err != nil {
		return 0, err
	}
	return version, nil
}

// checkOrder verifies the steps are numbered 1..n without gaps.
func checkOrder(steps []Migration) error {
	for i, m := range steps {
		if m.Version != i+1 {
			return fmt.Errorf("migration %q has version %d, want %d", m.Name, m.Version, i+1)
		}
		if m.Apply == nil {
			return fmt.Errorf("migration %d (%s) has no apply func", m.Version, m.Name)
		}
	}
	return nil
}

// runMigrations applies every step above the ledger's current version,
// one transaction and one ledger row per step.
func runMigrations(ctx context.Context, db *sql.DB, steps []Migration, now func() time.Time) error {
	if err := checkOrder(steps); err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, createLedger); err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}

	current, err := currentVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if current > len(steps) {
		return fmt.Errorf("%w: database version %d, supported version %d",
			ErrSchemaVersionTooNew, current, len(steps))
	}

	for _, m := range steps[current:] {
		if err := applyMigration(ctx, db, m, now); err != nil {
			return fmt.Errorf("migration v%d (%s): %w", m.Version, m.Name, err)
		}
	}
	return nil
}

func applyMigration(ctx context.Context, db *sql.DB, m Migration, now func() time.Time) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if err := m.Apply(ctx, tx); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_version (version, applied_at) VALUES (?, ?)`,
		m.Version, now().Unix(),
	); err != nil {
		return fmt.Errorf("record version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// SchemaVersion returns the highest applied migration version.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	v, err := currentVersion(ctx, s.db)
	if err != nil {
		return 0, ggoerr.NewStorage(fmt.Errorf("read schema version: %w", err))
	}
	return v, nil
}

// AppliedVersions returns every version in the ledger in ascending order.
func (s *Store) AppliedVersions(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT version FROM schema_version ORDER BY version`)
	if err != nil {
		return nil, ggoerr.NewStorage(fmt.Errorf("read schema versions: %w", err))
	}
	defer rows.Close()

	var versions []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, ggoerr.NewStorage(fmt.Errorf("scan schema version: %w", err))
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, ggoerr.NewStorage(fmt.Errorf("read schema versions: %w", err))
	}
	return versions, nil
}
