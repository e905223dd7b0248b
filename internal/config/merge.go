package config

// MergeLocal merges a local per-repo config into a global config,
// returning a new Config without mutating the global.
// Returns a copy of global if local is nil.
func MergeLocal(global Config, local *LocalConfig) Config {
	merged := global
	if local == nil {
		return merged
	}

	if local.Frecency.HalfLifeDays != nil {
		merged.Frecency.HalfLifeDays = *local.Frecency.HalfLifeDays
	}
	if local.Behavior.AutoSelectThreshold != nil {
		merged.Behavior.AutoSelectThreshold = *local.Behavior.AutoSelectThreshold
	}
	if local.Behavior.DefaultFuzzy != nil {
		merged.Behavior.DefaultFuzzy = *local.Behavior.DefaultFuzzy
	}
	if local.Behavior.DefaultIgnoreCase != nil {
		merged.Behavior.DefaultIgnoreCase = *local.Behavior.DefaultIgnoreCase
	}

	return merged
}

// ForRepo loads repoPath's .ggo.toml and merges it over global. A broken
// local file is returned as an error together with global unchanged.
func ForRepo(global Config, repoPath string) (Config, error) {
	local, err := LoadLocal(repoPath)
	if err != nil {
		return global, err
	}
	return MergeLocal(global, local), nil
}
