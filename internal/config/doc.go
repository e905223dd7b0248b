// Package config handles loading and validation of ggo configuration.
//
// Configuration is read from ~/.config/ggo/config.toml. A repository may
// carry a .ggo.toml at its root whose settings override the global file for
// that repository only.
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags (--no-fuzzy, -i/--ignore-case)
//   - .ggo.toml in the repository root
//   - GGO_CONFIG env var: alternate global config path (tests)
//   - ~/.config/ggo/config.toml
//   - Default values
//
// # Key Settings
//
//	[frecency]
//	half_life_days = 7.0          # age at which usage weight halves
//
//	[behavior]
//	auto_select_threshold = 2.0   # top/second score ratio to skip the picker
//	default_fuzzy = true          # fuzzy matching unless --no-fuzzy
//	default_ignore_case = false   # case-insensitive unless set
//
// # Data Location
//
// Usage history lives in a SQLite file next to the config, see [DataPath].
// GGO_DATA_DIR relocates it for test isolation.
package config
