package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Environment overrides, intended for tests.
const (
	EnvConfigPath = "GGO_CONFIG"
	EnvDataDir    = "GGO_DATA_DIR"
)

// DataFileName is the name of the usage database inside the data directory.
const DataFileName = "data.db"

// FrecencyConfig holds scoring settings
type FrecencyConfig struct {
	HalfLifeDays float64 `toml:"half_life_days"`
}

// HalfLife returns the half-life as a duration.
func (f FrecencyConfig) HalfLife() time.Duration {
	return time.Duration(f.HalfLifeDays * float64(24*time.Hour))
}

// BehaviorConfig holds matching and selection settings
type BehaviorConfig struct {
	AutoSelectThreshold float64 `toml:"auto_select_threshold"`
	DefaultFuzzy        bool    `toml:"default_fuzzy"`
	DefaultIgnoreCase   bool    `toml:"default_ignore_case"`
}

// Config holds the ggo configuration
type Config struct {
	Frecency FrecencyConfig `toml:"frecency"`
	Behavior BehaviorConfig `toml:"behavior"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Frecency: FrecencyConfig{HalfLifeDays: 7.0},
		Behavior: BehaviorConfig{
			AutoSelectThreshold: 2.0,
			DefaultFuzzy:        true,
			DefaultIgnoreCase:   false,
		},
	}
}

// Path returns the global config file path, honouring GGO_CONFIG.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ggo", "config.toml"), nil
}

// DataPath returns the usage database path: $GGO_DATA_DIR/data.db if set,
// else <user config dir>/ggo/data.db.
func DataPath() (string, error) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return filepath.Join(dir, DataFileName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(dir, "ggo", DataFileName), nil
}

// Load reads config from path.
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid, together with Default()
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so keys missing from the file keep their default.
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

const defaultConfig = `# ggo configuration

[frecency]
# Age in days after which a branch's recency weight is halved.
# Lower values favour recently used branches, higher values favour
# frequently used ones.
half_life_days = 7.0

[behavior]
# Auto-select the top match when its score is at least this many times
# the runner-up's. Otherwise an interactive picker is shown.
# Must be >= 1.0.
auto_select_threshold = 2.0

# Use fuzzy matching by default (disable per call with --no-fuzzy)
default_fuzzy = true

# Match case-insensitively by default (enable per call with -i)
default_ignore_case = false

# Per-repository overrides go in .ggo.toml at the repository root and use
# the same sections and keys.
`

// DefaultConfig returns the default configuration template content.
func DefaultConfig() string {
	return defaultConfig
}

// Init creates a default config file at path.
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(path string, force bool) (string, error) {
	// Check if file already exists (skip if force)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
