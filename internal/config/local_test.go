package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func TestLoadLocal(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		local, err := LoadLocal(t.TempDir())
		if err != nil || local != nil {
			t.Errorf("LoadLocal(empty dir) = %v, %v; want nil, nil", local, err)
		}
	})

	t.Run("partial overrides", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, LocalConfigFileName), "[behavior]\ndefault_fuzzy = false\n")

		local, err := LoadLocal(dir)
		if err != nil {
			t.Fatal(err)
		}
		if local.Behavior.DefaultFuzzy == nil || *local.Behavior.DefaultFuzzy {
			t.Errorf("default_fuzzy = %v, want false", local.Behavior.DefaultFuzzy)
		}
		if local.Frecency.HalfLifeDays != nil || local.Behavior.AutoSelectThreshold != nil {
			t.Errorf("unset fields should stay nil: %+v", local)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, LocalConfigFileName), "[frecency]\nhalf_life_days = -1.0\n")

		_, err := LoadLocal(dir)
		if err == nil || !strings.Contains(err.Error(), LocalConfigFileName) {
			t.Errorf("LoadLocal error = %v, want mention of %s", err, LocalConfigFileName)
		}
	})
}

func TestMergeLocal(t *testing.T) {
	t.Parallel()

	global := Default()

	if got := MergeLocal(global, nil); got != global {
		t.Errorf("MergeLocal(nil) = %+v", got)
	}

	local := &LocalConfig{
		Frecency: LocalFrecency{HalfLifeDays: ptr(1.0)},
		Behavior: LocalBehavior{DefaultIgnoreCase: ptr(true)},
	}
	got := MergeLocal(global, local)
	want := global
	want.Frecency.HalfLifeDays = 1
	want.Behavior.DefaultIgnoreCase = true
	if got != want {
		t.Errorf("MergeLocal = %+v, want %+v", got, want)
	}
	if global != Default() {
		t.Errorf("MergeLocal mutated global")
	}
}

func TestForRepo(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, LocalConfigFileName), "[behavior]\nauto_select_threshold = 3.0\n")

	cfg, err := ForRepo(Default(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Behavior.AutoSelectThreshold != 3 {
		t.Errorf("threshold = %v, want 3", cfg.Behavior.AutoSelectThreshold)
	}

	broken := t.TempDir()
	writeFile(t, filepath.Join(broken, LocalConfigFileName), "not toml ===")
	cfg, err = ForRepo(Default(), broken)
	if err == nil {
		t.Error("broken local config accepted")
	}
	if cfg != Default() {
		t.Errorf("ForRepo on error = %+v, want global", cfg)
	}
}
