package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/ggo/internal/config"
	"github.com/raphi011/ggo/internal/git"
	"github.com/raphi011/ggo/internal/log"
	"github.com/raphi011/ggo/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg     config.Config
	workDir string
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// Root-level flags
var (
	listFlag        bool
	ignoreCaseFlag  bool
	interactiveFlag bool
	noFuzzyFlag     bool
	statsFlag       bool
	copyFlag        bool
)

// rootCmd checks out the best branch matching its pattern argument.
var rootCmd = &cobra.Command{
	Use:   "ggo [pattern]",
	Short: "Smart git branch switcher",
	Long: `ggo searches your local git branches and checks out the best match
for a pattern, ranked by fuzzy match quality and frecency (how often and
how recently you used each branch).

ggo learns from your usage: the more you use a branch, the higher it ranks.
Use 'ggo -' to go back to the previous branch.`,
	Example: `  ggo expo                 # Checkout best branch matching 'expo'
  ggo -l feat              # List branches matching 'feat' with scores
  ggo -i FEAT              # Case-insensitive match
  ggo --interactive feat   # Pick from matches interactively
  ggo -                    # Back to the previous branch
  ggo --stats              # Show usage statistics`,
	Args:                       cobra.MaximumNArgs(1),
	ValidArgsFunction:          completePattern,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		// Validate mutually exclusive flags
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Flags are parsed now, so the logger can honour them
		cmd.SetContext(log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet)))

		// Check git is available
		return git.CheckGit()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if statsFlag {
			return runStats(ctx)
		}
		if len(args) == 0 {
			return fmt.Errorf("pattern argument is required\n\nUsage: ggo <pattern>")
		}

		sess, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer sess.Close()

		pattern := args[0]
		opts := sess.options(ignoreCaseFlag, noFuzzyFlag, interactiveFlag)

		if listFlag {
			return runList(ctx, sess, pattern, opts, copyFlag)
		}
		if pattern == "-" {
			return runPrevious(ctx, sess)
		}
		return runCheckout(ctx, sess, pattern, opts)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	path, err := config.Path()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg, err = config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Get working directory
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ggo: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Replaced in PersistentPreRunE once flags are parsed
	ctx = log.WithLogger(ctx, log.New(os.Stderr, false, false))

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, output.NewTerminal(os.Stdout, os.Environ()))

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'ggo -h' for help")
		cancel()
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show git commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Matching flags
	rootCmd.Flags().BoolVarP(&listFlag, "list", "l", false, "List matching branches without checking out")
	rootCmd.Flags().BoolVarP(&ignoreCaseFlag, "ignore-case", "i", false, "Case-insensitive pattern matching")
	rootCmd.Flags().BoolVar(&interactiveFlag, "interactive", false, "Pick from matches interactively")
	rootCmd.Flags().BoolVar(&noFuzzyFlag, "no-fuzzy", false, "Use substring matching instead of fuzzy matching")
	rootCmd.Flags().BoolVar(&statsFlag, "stats", false, "Show usage statistics")
	rootCmd.Flags().BoolVar(&copyFlag, "copy", false, "With --list, copy the checkout target to the clipboard")
	rootCmd.MarkFlagsMutuallyExclusive("list", "interactive")
	rootCmd.MarkFlagsMutuallyExclusive("list", "stats")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newAliasCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newCleanupCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
