//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/ggo/internal/config"
	"github.com/raphi011/ggo/internal/log"
	"github.com/raphi011/ggo/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// runGit runs git in dir and fails the test on error.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run git %v: %v\n%s", args, err, out)
	}
	return strings.TrimSpace(string(out))
}

// setupTestRepo creates a git repo on main with an initial commit and the
// given extra branches in dir/name.
// Returns the absolute path to the created repo (with symlinks resolved).
func setupTestRepo(t *testing.T, dir, name string, branches ...string) string {
	t.Helper()

	dir = resolvePath(t, dir)
	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGit(t, repoPath, "init", "-b", "main")
	runGit(t, repoPath, "config", "user.email", "test@test.com")
	runGit(t, repoPath, "config", "user.name", "Test User")
	runGit(t, repoPath, "config", "commit.gpgsign", "false")

	readmePath := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("# "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	runGit(t, repoPath, "add", "README.md")
	runGit(t, repoPath, "commit", "-m", "Initial commit")

	for _, b := range branches {
		runGit(t, repoPath, "branch", b)
	}

	return repoPath
}

// currentBranch returns the branch checked out in repoPath.
func currentBranch(t *testing.T, repoPath string) string {
	t.Helper()
	return runGit(t, repoPath, "rev-parse", "--abbrev-ref", "HEAD")
}

// testEnv captures what commands print.
type testEnv struct {
	ctx    context.Context
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	ctx := log.WithLogger(context.Background(), log.New(env.stderr, false, false))
	env.ctx = output.WithPrinter(ctx, output.New(env.stdout))
	return env
}

// newTestSession opens repoPath with a private usage database.
func newTestSession(t *testing.T, env *testEnv, repoPath string) *session {
	t.Helper()
	dataPath := filepath.Join(t.TempDir(), "ggo", config.DataFileName)
	sess, err := newSession(env.ctx, repoPath, dataPath, config.Default())
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	t.Cleanup(sess.Close)
	return sess
}

// writeFile writes content to dir/name.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}
