package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/raphi011/ggo/internal/ggoerr"
)

// UsageRecord is how often and how recently a branch was checked out in a repo.
type UsageRecord struct {
	RepoPath    string
	Branch      string
	SwitchCount int64
	LastUsed    time.Time
}

// Stats summarises the whole database.
type Stats struct {
	TotalSwitches  int64
	UniqueBranches int64
	UniqueRepos    int64
	Path           string
}

// RecordCheckout counts a checkout of branch in repo at the store's current time.
func (s *Store) RecordCheckout(ctx context.Context, repo, branch string) error {
	return s.RecordCheckoutAt(ctx, repo, branch, s.now())
}

// RecordCheckoutAt inserts the record with switch_count 1, or increments it.
// last_used never moves backwards.
func (s *Store) RecordCheckoutAt(ctx context.Context, repo, branch string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO branches (repo_path, branch_name, switch_count, last_used)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(repo_path, branch_name) DO UPDATE SET
			switch_count = switch_count + 1,
			last_used = MAX(last_used, excluded.last_used)`,
		repo, branch, at.Unix(),
	)
	if err != nil {
		return ggoerr.NewStorage(fmt.Errorf("record checkout: %w", err))
	}
	return nil
}

// Records returns the usage records of repo, most recently used first.
func (s *Store) Records(ctx context.Context, repo string) ([]UsageRecord, error) {
	return s.queryRecords(ctx, `
		SELECT repo_path, branch_name, switch_count, last_used
		FROM branches
		WHERE repo_path = ?
		ORDER BY last_used DESC, branch_name`, repo)
}

// AllRecords returns every usage record across repositories, most recently
// used first.
func (s *Store) AllRecords(ctx context.Context) ([]UsageRecord, error) {
	return s.queryRecords(ctx, `
		SELECT repo_path, branch_name, switch_count, last_used
		FROM branches
		ORDER BY last_used DESC, repo_path, branch_name`)
}

func (s *Store) queryRecords(ctx context.Context, query string, args ...any) ([]UsageRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ggoerr.NewStorage(fmt.Errorf("query branches: %w", err))
	}
	defer rows.Close()

	var records []UsageRecord
	for rows.Next() {
		var r UsageRecord
		var lastUsed int64
		if err := rows.Scan(&r.RepoPath, &r.Branch, &r.SwitchCount, &lastUsed); err != nil {
			return nil, ggoerr.NewStorage(fmt.Errorf("scan branch: %w", err))
		}
		r.LastUsed = time.Unix(lastUsed, 0)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, ggoerr.NewStorage(fmt.Errorf("query branches: %w", err))
	}
	return records, nil
}

// Stats returns totals over all repositories.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	st := Stats{Path: s.path}
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(switch_count), 0), COUNT(*), COUNT(DISTINCT repo_path)
		FROM branches`,
	).Scan(&st.TotalSwitches, &st.UniqueBranches, &st.UniqueRepos)
	if err != nil {
		return st, ggoerr.NewStorage(fmt.Errorf("read stats: %w", err))
	}
	return st, nil
}

// SavePreviousBranch replaces repo's previous-branch pointer.
func (s *Store) SavePreviousBranch(ctx context.Context, repo, branch string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO previous_branch (repo_path, branch_name, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(repo_path) DO UPDATE SET
			branch_name = excluded.branch_name,
			updated_at = excluded.updated_at`,
		repo, branch, s.nowUnix(),
	)
	if err != nil {
		return ggoerr.NewStorage(fmt.Errorf("save previous branch: %w", err))
	}
	return nil
}

// PreviousBranch returns repo's previous-branch pointer; ok is false if
// none was saved yet.
func (s *Store) PreviousBranch(ctx context.Context, repo string) (branch string, ok bool, err error) {
	err = s.db.QueryRowContext(ctx,
		`SELECT branch_name FROM previous_branch WHERE repo_path = ?`, repo,
	).Scan(&branch)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, ggoerr.NewStorage(fmt.Errorf("get previous branch: %w", err))
	}
	return branch, true, nil
}
