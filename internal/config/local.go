package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-repo override file at the repository root.
const LocalConfigFileName = ".ggo.toml"

// LocalConfig holds per-repo configuration overrides from .ggo.toml.
// Nil pointer fields indicate "not set" (inherit from global).
type LocalConfig struct {
	Frecency LocalFrecency `toml:"frecency"`
	Behavior LocalBehavior `toml:"behavior"`
}

// LocalFrecency holds local scoring overrides
type LocalFrecency struct {
	HalfLifeDays *float64 `toml:"half_life_days"`
}

// LocalBehavior holds local matching and selection overrides
type LocalBehavior struct {
	AutoSelectThreshold *float64 `toml:"auto_select_threshold"`
	DefaultFuzzy        *bool    `toml:"default_fuzzy"`
	DefaultIgnoreCase   *bool    `toml:"default_ignore_case"`
}

// LoadLocal reads a per-repo .ggo.toml config from the given repo path.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(repoPath string) (*LocalConfig, error) {
	configFile := filepath.Join(repoPath, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	if v := local.Frecency.HalfLifeDays; v != nil {
		if err := validateHalfLife(*v, "frecency.half_life_days in "+configFile); err != nil {
			return nil, err
		}
	}
	if v := local.Behavior.AutoSelectThreshold; v != nil {
		if err := validateThreshold(*v, "behavior.auto_select_threshold in "+configFile); err != nil {
			return nil, err
		}
	}

	return &local, nil
}
