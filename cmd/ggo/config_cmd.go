package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/raphi011/ggo/internal/config"
	"github.com/raphi011/ggo/internal/git"
	"github.com/raphi011/ggo/internal/log"
	"github.com/raphi011/ggo/internal/output"
	"github.com/raphi011/ggo/internal/ui/prompt"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage ggo configuration.

Global config: ~/.config/ggo/config.toml
Local config:  .ggo.toml (in the repository root)`,
		Example: `  ggo config init          # Create default global config
  ggo config show          # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file.

Creates the global config at ~/.config/ggo/config.toml. When the file
already exists you are asked before it is overwritten.`,
		Example: `  ggo config init      # Create global config
  ggo config init -f   # Overwrite existing config
  ggo config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if stdout {
				output.FromContext(ctx).Print(config.DefaultConfig())
				return nil
			}

			path, err := config.Path()
			if err != nil {
				return err
			}
			return initConfig(ctx, path, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

// initConfig writes the default config to path. An existing file is only
// replaced with force or after confirmation in a terminal.
func initConfig(ctx context.Context, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			overwrite, err := confirmOverwrite(path)
			if err != nil {
				return err
			}
			if !overwrite {
				log.FromContext(ctx).Println("Config left unchanged")
				return nil
			}
			force = true
		}
	}

	created, err := config.Init(path, force)
	if err != nil {
		return err
	}
	output.FromContext(ctx).Printf("Created config file: %s\n", created)
	return nil
}

func confirmOverwrite(path string) (bool, error) {
	result, err := prompt.Confirm(fmt.Sprintf("Config file %s exists. Overwrite?", path))
	if errors.Is(err, prompt.ErrNotInteractive) {
		return false, fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
	}
	if err != nil {
		return false, err
	}
	return result.Confirmed && !result.Cancelled, nil
}

func newConfigShowCmd() *cobra.Command {
	var tomlOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

When inside a repository, shows the global config merged with the
repository's .ggo.toml, with local values annotated.`,
		Example: `  ggo config show          # Show config (merged if in a repo)
  ggo config show --toml   # Output as TOML`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path, err := config.Path()
			if err != nil {
				return err
			}

			var repoPath string
			if repo, err := git.Open(ctx, workDir); err == nil {
				repoPath = repo.Root()
			}
			return showConfig(ctx, cfg, path, repoPath, tomlOutput)
		},
	}

	cmd.Flags().BoolVar(&tomlOutput, "toml", false, "Output the effective config as TOML")

	return cmd
}

// showConfig prints the effective configuration for repoPath, or the global
// configuration when repoPath is empty. With asTOML the merged values are
// written in config file syntax.
func showConfig(ctx context.Context, global config.Config, globalPath, repoPath string, asTOML bool) error {
	out := output.FromContext(ctx)

	var local *config.LocalConfig
	effective := global
	if repoPath != "" {
		var err error
		local, err = config.LoadLocal(repoPath)
		if err != nil {
			log.FromContext(ctx).Warnf("failed to load local config: %v (using global config)", err)
		}
		effective = config.MergeLocal(global, local)
	}

	if asTOML {
		return toml.NewEncoder(out.Writer()).Encode(effective)
	}

	out.Printf("Global config: %s\n", globalPath)
	if repoPath != "" {
		if local != nil {
			out.Printf("Local config:  %s\n", filepath.Join(repoPath, config.LocalConfigFileName))
		} else {
			out.Printf("Local config:  (none)\n")
		}
	}
	dataPath, err := config.DataPath()
	if err == nil {
		out.Printf("Database:      %s\n", dataPath)
	}
	out.Println()

	source := func(isLocal bool) string {
		if isLocal {
			return " (local)"
		}
		return ""
	}

	out.Printf("frecency.half_life_days: %g%s\n", effective.Frecency.HalfLifeDays, source(local != nil && local.Frecency.HalfLifeDays != nil))
	out.Printf("behavior.auto_select_threshold: %g%s\n", effective.Behavior.AutoSelectThreshold, source(local != nil && local.Behavior.AutoSelectThreshold != nil))
	out.Printf("behavior.default_fuzzy: %v%s\n", effective.Behavior.DefaultFuzzy, source(local != nil && local.Behavior.DefaultFuzzy != nil))
	out.Printf("behavior.default_ignore_case: %v%s\n", effective.Behavior.DefaultIgnoreCase, source(local != nil && local.Behavior.DefaultIgnoreCase != nil))

	return nil
}
