package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// Checker answers existence questions for store maintenance.
type Checker struct{}

// RepoExists reports whether path is still a directory inside a git repository.
func (Checker) RepoExists(ctx context.Context, path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	return runGit(ctx, path, "rev-parse", "--is-inside-work-tree") == nil
}

// BranchExists reports whether branch exists as a local branch of the repo at path.
func (Checker) BranchExists(ctx context.Context, path, branch string) (bool, error) {
	return BranchExists(ctx, path, branch)
}
