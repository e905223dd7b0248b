package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/ggo/internal/ggoerr"
	"github.com/raphi011/ggo/internal/validate"
)

// RepoRoot returns the absolute top-level directory of the repository
// containing dir ("" = current directory).
func RepoRoot(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", ggoerr.NewNotARepository(err)
	}
	root := strings.TrimSpace(string(output))
	if root == "" {
		return "", ggoerr.NewNotARepository(nil)
	}
	return root, nil
}

// ListLocalBranches returns the short names of all local branches.
func ListLocalBranches(ctx context.Context, repoPath string) ([]string, error) {
	output, err := outputGit(ctx, repoPath, "branch", "--format=%(refname:short)")
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, ggoerr.NewNotARepository(err)
	}
	return parseBranchList(string(output)), nil
}

// parseBranchList splits git branch output into names, dropping blanks and
// the "(HEAD detached at ...)" pseudo entry.
func parseBranchList(output string) []string {
	var branches []string
	for _, line := range strings.Split(output, "\n") {
		name := strings.TrimSpace(line)
		name = strings.TrimPrefix(name, "* ")
		if name == "" || strings.HasPrefix(name, "(") {
			continue
		}
		branches = append(branches, name)
	}
	return branches
}

// CurrentBranch returns the checked out branch. Detached HEAD is an error.
func CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	output, err := outputGit(ctx, repoPath, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	branch := strings.TrimSpace(string(output))
	if branch == "" {
		return "", fmt.Errorf("not on a branch (detached HEAD)")
	}
	return branch, nil
}

// Checkout switches the work tree at repoPath to branch.
func Checkout(ctx context.Context, repoPath, branch string) error {
	if err := runGit(ctx, repoPath, "checkout", branch); err != nil {
		return ggoerr.NewCheckoutFailed(branch, err)
	}
	return nil
}

// BranchExists checks if a local branch exists
func BranchExists(ctx context.Context, repoPath, branch string) (bool, error) {
	err := runGit(ctx, repoPath, "rev-parse", "--verify", "--quiet", "refs/heads/"+branch)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		// rev-parse --verify exits 1 for a missing ref
		return false, nil
	}
	return true, nil
}

// Repo binds the branch operations to one repository root.
type Repo struct {
	Path string
}

// Open resolves the repository containing dir.
func Open(ctx context.Context, dir string) (*Repo, error) {
	root, err := RepoRoot(ctx, dir)
	if err != nil {
		return nil, err
	}
	if err := validate.RepoPath(root); err != nil {
		return nil, err
	}
	return &Repo{Path: root}, nil
}

func (r *Repo) Root() string { return r.Path }

func (r *Repo) ListLocalBranches(ctx context.Context) ([]string, error) {
	return ListLocalBranches(ctx, r.Path)
}

func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	return CurrentBranch(ctx, r.Path)
}

func (r *Repo) Checkout(ctx context.Context, branch string) error {
	return Checkout(ctx, r.Path, branch)
}
