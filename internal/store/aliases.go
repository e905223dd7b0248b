package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/raphi011/ggo/internal/ggoerr"
)

// Alias is a repo-scoped short name for a branch.
type Alias struct {
	RepoPath  string
	Name      string
	Branch    string
	CreatedAt time.Time
}

// CreateAlias points alias at branch in repo, replacing any previous target.
func (s *Store) CreateAlias(ctx context.Context, repo, alias, branch string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO aliases (repo_path, alias, branch_name, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(repo_path, alias) DO UPDATE SET
			branch_name = excluded.branch_name,
			created_at = excluded.created_at`,
		repo, alias, branch, s.nowUnix(),
	)
	if err != nil {
		return ggoerr.NewStorage(fmt.Errorf("create alias: %w", err))
	}
	return nil
}

// Alias looks up alias in repo only.
func (s *Store) Alias(ctx context.Context, repo, alias string) (branch string, ok bool, err error) {
	err = s.db.QueryRowContext(ctx,
		`SELECT branch_name FROM aliases WHERE repo_path = ? AND alias = ?`, repo, alias,
	).Scan(&branch)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, ggoerr.NewStorage(fmt.Errorf("get alias: %w", err))
	}
	return branch, true, nil
}

// DeleteAlias removes alias from repo. Deleting a missing alias is not an
// error; removed reports whether a row went away.
func (s *Store) DeleteAlias(ctx context.Context, repo, alias string) (removed bool, err error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM aliases WHERE repo_path = ? AND alias = ?`, repo, alias)
	if err != nil {
		return false, ggoerr.NewStorage(fmt.Errorf("delete alias: %w", err))
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// ListAliases returns repo's aliases sorted by name.
func (s *Store) ListAliases(ctx context.Context, repo string) ([]Alias, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT repo_path, alias, branch_name, created_at
		FROM aliases
		WHERE repo_path = ?
		ORDER BY alias`, repo)
	if err != nil {
		return nil, ggoerr.NewStorage(fmt.Errorf("query aliases: %w", err))
	}
	defer rows.Close()

	var aliases []Alias
	for rows.Next() {
		var a Alias
		var created int64
		if err := rows.Scan(&a.RepoPath, &a.Name, &a.Branch, &created); err != nil {
			return nil, ggoerr.NewStorage(fmt.Errorf("scan alias: %w", err))
		}
		a.CreatedAt = time.Unix(created, 0)
		aliases = append(aliases, a)
	}
	if err := rows.Err(); err != nil {
		return nil, ggoerr.NewStorage(fmt.Errorf("query aliases: %w", err))
	}
	return aliases, nil
}

// AliasesForBranch returns the sorted alias names pointing at branch in repo.
func (s *Store) AliasesForBranch(ctx context.Context, repo, branch string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT alias FROM aliases
		WHERE repo_path = ? AND branch_name = ?
		ORDER BY alias`, repo, branch)
	if err != nil {
		return nil, ggoerr.NewStorage(fmt.Errorf("query aliases: %w", err))
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, ggoerr.NewStorage(fmt.Errorf("scan alias: %w", err))
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, ggoerr.NewStorage(fmt.Errorf("query aliases: %w", err))
	}
	return names, nil
}
