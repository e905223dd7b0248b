//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/ggo/internal/config"
	"github.com/raphi011/ggo/internal/ui/prompt"
)

func TestConfigInit(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "ggo", "config.toml")
	env := newTestEnv(t)

	if err := initConfig(env.ctx, path, false); err != nil {
		t.Fatalf("initConfig failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if string(data) != config.DefaultConfig() {
		t.Errorf("written config differs from the default template")
	}

	// Without a terminal an existing file is never overwritten implicitly.
	if !prompt.Interactive() {
		if err := initConfig(env.ctx, path, false); err == nil || !strings.Contains(err.Error(), "already exists") {
			t.Errorf("second initConfig = %v, want already exists error", err)
		}
	}

	if err := os.WriteFile(path, []byte("# edited\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := initConfig(env.ctx, path, true); err != nil {
		t.Fatalf("forced initConfig failed: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != config.DefaultConfig() {
		t.Errorf("forced init should restore the default template")
	}
}

func TestConfigShow_LocalOverride(t *testing.T) {
	t.Parallel()
	repoPath := setupTestRepo(t, t.TempDir(), "myrepo")
	writeFile(t, repoPath, config.LocalConfigFileName, "[behavior]\ndefault_fuzzy = false\n")
	env := newTestEnv(t)

	if err := showConfig(env.ctx, config.Default(), "/etc/ggo.toml", repoPath, false); err != nil {
		t.Fatalf("showConfig failed: %v", err)
	}

	got := env.stdout.String()
	for _, want := range []string{
		"Global config: /etc/ggo.toml",
		"Local config:  " + filepath.Join(repoPath, config.LocalConfigFileName),
		"frecency.half_life_days: 7\n",
		"behavior.default_fuzzy: false (local)",
		"behavior.auto_select_threshold: 2\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestConfigShow_TOML(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	if err := showConfig(env.ctx, config.Default(), "/etc/ggo.toml", "", true); err != nil {
		t.Fatalf("showConfig failed: %v", err)
	}
	got := env.stdout.String()
	for _, want := range []string{"[frecency]", "half_life_days = 7.0", "[behavior]", "default_fuzzy = true"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestNewSession_LocalConfigApplied(t *testing.T) {
	t.Parallel()
	repoPath := setupTestRepo(t, t.TempDir(), "myrepo")
	writeFile(t, repoPath, config.LocalConfigFileName, "[behavior]\ndefault_ignore_case = true\n")
	env := newTestEnv(t)
	sess := newTestSession(t, env, repoPath)

	opts := sess.options(false, true, false)
	if !opts.IgnoreCase {
		t.Errorf("local default_ignore_case should apply")
	}
	if opts.Fuzzy {
		t.Errorf("--no-fuzzy should disable fuzzy matching")
	}
}

func TestNewSession_NotARepository(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := newSession(env.ctx, resolvePath(t, t.TempDir()), filepath.Join(t.TempDir(), "data.db"), config.Default())
	if err == nil {
		t.Fatal("newSession outside a repository should fail")
	}
}
