package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/raphi011/ggo/internal/ggoerr"
)

// BranchChecker reports whether repositories and branches still exist.
type BranchChecker interface {
	RepoExists(ctx context.Context, repo string) bool
	BranchExists(ctx context.Context, repo, branch string) (bool, error)
}

// CleanupOldRecords deletes usage records not used within maxAgeDays and
// returns how many were removed.
func (s *Store) CleanupOldRecords(ctx context.Context, maxAgeDays int) (int64, error) {
	if maxAgeDays < 0 {
		return 0, fmt.Errorf("max age must not be negative, got %d days", maxAgeDays)
	}
	cutoff := s.now().Add(-time.Duration(maxAgeDays) * 24 * time.Hour).Unix()

	res, err := s.db.ExecContext(ctx, `DELETE FROM branches WHERE last_used < ?`, cutoff)
	if err != nil {
		return 0, ggoerr.NewStorage(fmt.Errorf("cleanup old records: %w", err))
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// CleanupDeletedBranches removes usage records, and the aliases pointing at
// them, whose branch no longer exists. A repository that no longer exists
// loses all of its records and aliases at once. Records whose existence
// could not be determined are kept; those errors are joined into err.
func (s *Store) CleanupDeletedBranches(ctx context.Context, checker BranchChecker) (removed int64, err error) {
	records, err := s.AllRecords(ctx)
	if err != nil {
		return 0, err
	}

	byRepo := make(map[string][]string)
	var repos []string
	for _, r := range records {
		if _, seen := byRepo[r.RepoPath]; !seen {
			repos = append(repos, r.RepoPath)
		}
		byRepo[r.RepoPath] = append(byRepo[r.RepoPath], r.Branch)
	}

	var checkErrs []error
	for _, repo := range repos {
		if !checker.RepoExists(ctx, repo) {
			n, err := s.deleteRepo(ctx, repo)
			if err != nil {
				return removed, err
			}
			removed += n
			continue
		}

		for _, branch := range byRepo[repo] {
			exists, err := checker.BranchExists(ctx, repo, branch)
			if err != nil {
				checkErrs = append(checkErrs, fmt.Errorf("%s: %s: %w", repo, branch, err))
				continue
			}
			if exists {
				continue
			}
			n, err := s.deleteBranch(ctx, repo, branch)
			if err != nil {
				return removed, err
			}
			removed += n
		}
	}

	return removed, errors.Join(checkErrs...)
}

// deleteRepo drops every record and alias of repo in one transaction.
func (s *Store) deleteRepo(ctx context.Context, repo string) (int64, error) {
	return s.deleteTx(ctx, "delete repository records",
		`DELETE FROM branches WHERE repo_path = ?`,
		`DELETE FROM aliases WHERE repo_path = ?`,
		[]any{repo})
}

// deleteBranch drops one usage record and the aliases targeting it.
func (s *Store) deleteBranch(ctx context.Context, repo, branch string) (int64, error) {
	return s.deleteTx(ctx, "delete branch record",
		`DELETE FROM branches WHERE repo_path = ? AND branch_name = ?`,
		`DELETE FROM aliases WHERE repo_path = ? AND branch_name = ?`,
		[]any{repo, branch})
}

// deleteTx runs the record delete and the alias delete together and returns
// the number of usage records removed.
func (s *Store) deleteTx(ctx context.Context, op, recordsStmt, aliasesStmt string, args []any) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, ggoerr.NewStorage(fmt.Errorf("%s: %w", op, err))
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	res, err := tx.ExecContext(ctx, recordsStmt, args...)
	if err != nil {
		return 0, ggoerr.NewStorage(fmt.Errorf("%s: %w", op, err))
	}
	if _, err := tx.ExecContext(ctx, aliasesStmt, args...); err != nil {
		return 0, ggoerr.NewStorage(fmt.Errorf("%s: %w", op, err))
	}
	if err := tx.Commit(); err != nil {
		return 0, ggoerr.NewStorage(fmt.Errorf("%s: %w", op, err))
	}
	n, _ := res.RowsAffected()
	return n, nil
}
