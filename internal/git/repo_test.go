package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/raphi011/ggo/internal/ggoerr"
)

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks for %s: %v", tmpDir, err)
	}
	return resolved
}

// setupTestRepo creates a git repo on main with one commit and the given
// extra branches. Returns the resolved repo path.
func setupTestRepo(t *testing.T, branches ...string) string {
	t.Helper()
	repoPath := filepath.Join(resolveTempDir(t), "test-repo")

	ctx := context.Background()
	if err := runGit(ctx, "", "init", "-b", "main", repoPath); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}
	for _, args := range [][]string{
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
	} {
		if err := runGit(ctx, repoPath, args...); err != nil {
			t.Fatalf("failed to run git %v: %v", args, err)
		}
	}

	if err := os.WriteFile(filepath.Join(repoPath, "README.md"), []byte("# test\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := runGit(ctx, repoPath, "add", "README.md"); err != nil {
		t.Fatalf("failed to add file: %v", err)
	}
	if err := runGit(ctx, repoPath, "commit", "-m", "Initial commit"); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
	for _, b := range branches {
		if err := runGit(ctx, repoPath, "branch", b); err != nil {
			t.Fatalf("failed to create branch %s: %v", b, err)
		}
	}
	return repoPath
}

func TestParseBranchList(t *testing.T) {
	t.Parallel()

	got := parseBranchList("main\n* feature/auth\n\n(HEAD detached at 1234abc)\n  dev  \n")
	want := []string{"main", "feature/auth", "dev"}
	if !slices.Equal(got, want) {
		t.Errorf("parseBranchList = %v, want %v", got, want)
	}
}

func TestRepoOperations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repoPath := setupTestRepo(t, "feature/auth", "feature/dashboard")

	root, err := RepoRoot(ctx, filepath.Join(repoPath))
	if err != nil {
		t.Fatalf("RepoRoot: %v", err)
	}
	if root != repoPath {
		t.Errorf("RepoRoot = %q, want %q", root, repoPath)
	}

	repo := &Repo{Path: root}
	branches, err := repo.ListLocalBranches(ctx)
	if err != nil {
		t.Fatalf("ListLocalBranches: %v", err)
	}
	slices.Sort(branches)
	if want := []string{"feature/auth", "feature/dashboard", "main"}; !slices.Equal(branches, want) {
		t.Errorf("ListLocalBranches = %v, want %v", branches, want)
	}

	if cur, err := repo.CurrentBranch(ctx); err != nil || cur != "main" {
		t.Errorf("CurrentBranch = %q, %v; want main", cur, err)
	}

	if err := repo.Checkout(ctx, "feature/auth"); err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if cur, _ := repo.CurrentBranch(ctx); cur != "feature/auth" {
		t.Errorf("after Checkout, CurrentBranch = %q", cur)
	}

	err = repo.Checkout(ctx, "does-not-exist")
	if !ggoerr.IsKind(err, ggoerr.CheckoutFailed) {
		t.Errorf("Checkout(missing) = %v, want CheckoutFailed", err)
	}
}

func TestRepoRoot_NotARepository(t *testing.T) {
	t.Parallel()

	_, err := RepoRoot(context.Background(), resolveTempDir(t))
	if !ggoerr.IsKind(err, ggoerr.NotARepository) {
		t.Errorf("RepoRoot outside repo = %v, want NotARepository", err)
	}
}

func TestListLocalBranches_Errors(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t, "develop")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ListLocalBranches(ctx, repoPath)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ListLocalBranches with cancelled context = %v, want context.Canceled", err)
	}
	if ggoerr.IsKind(err, ggoerr.NotARepository) {
		t.Errorf("cancellation reported as NotARepository: %v", err)
	}

	_, err = ListLocalBranches(context.Background(), resolveTempDir(t))
	if !ggoerr.IsKind(err, ggoerr.NotARepository) {
		t.Errorf("ListLocalBranches outside repo = %v, want NotARepository", err)
	}
}

func TestChecker(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repoPath := setupTestRepo(t, "dev")

	var c Checker
	if !c.RepoExists(ctx, repoPath) {
		t.Errorf("RepoExists(%s) = false", repoPath)
	}
	if c.RepoExists(ctx, filepath.Join(repoPath, "missing")) {
		t.Errorf("RepoExists(missing) = true")
	}

	for branch, want := range map[string]bool{"dev": true, "main": true, "gone": false} {
		got, err := c.BranchExists(ctx, repoPath, branch)
		if err != nil {
			t.Fatalf("BranchExists(%s): %v", branch, err)
		}
		if got != want {
			t.Errorf("BranchExists(%s) = %v, want %v", branch, got, want)
		}
	}
}

func TestCheckGit(t *testing.T) {
	t.Parallel()
	if err := CheckGit(); err != nil {
		t.Fatalf("CheckGit() = %v, want nil (git should be in PATH)", err)
	}
}
