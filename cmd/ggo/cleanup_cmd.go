package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/raphi011/ggo/internal/config"
	"github.com/raphi011/ggo/internal/ggoerr"
	"github.com/raphi011/ggo/internal/git"
	"github.com/raphi011/ggo/internal/log"
	"github.com/raphi011/ggo/internal/output"
	"github.com/raphi011/ggo/internal/store"
	"github.com/raphi011/ggo/internal/ui/progress"
	"github.com/raphi011/ggo/internal/ui/prompt"
	"github.com/raphi011/ggo/internal/ui/static"
)

const defaultMaxAgeDays = 365

type cleanupOptions struct {
	deleted   bool
	olderThan int
	// ageSet is true when --older-than was given explicitly.
	ageSet   bool
	optimize bool
	size     bool
	// showProgress animates a spinner while branches are checked.
	showProgress bool
}

func (o cleanupOptions) empty() bool {
	return !o.deleted && !o.ageSet && !o.optimize && !o.size
}

func newCleanupCmd() *cobra.Command {
	var opts cleanupOptions

	cmd := &cobra.Command{
		Use:     "cleanup",
		Short:   "Maintain the usage database",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Maintain the usage database.

--deleted drops records (and aliases) of branches and repositories that no
longer exist. --older-than drops records not used within N days; it runs
when given explicitly or together with --optimize.`,
		Example: `  ggo cleanup --deleted --optimize
  ggo cleanup --older-than 90
  ggo cleanup --size`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts.ageSet = cmd.Flags().Changed("older-than")
			opts.showProgress = prompt.Interactive() && !quiet

			if opts.empty() {
				printCleanupHelp(output.FromContext(ctx))
				return nil
			}

			dataPath, err := config.DataPath()
			if err != nil {
				return err
			}
			st, err := store.Open(ctx, dataPath)
			if err != nil {
				return err
			}
			defer st.Close()

			return runCleanup(ctx, st, git.Checker{}, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.deleted, "deleted", false, "Remove records for deleted branches")
	cmd.Flags().IntVar(&opts.olderThan, "older-than", defaultMaxAgeDays, "Remove branches not used in N days")
	cmd.Flags().BoolVar(&opts.optimize, "optimize", false, "Run VACUUM and ANALYZE")
	cmd.Flags().BoolVar(&opts.size, "size", false, "Show database size")

	return cmd
}

func printCleanupHelp(out *output.Printer) {
	out.Println("Database cleanup options:")
	out.Println("  --deleted          Remove records for deleted branches")
	out.Println("  --older-than N     Remove branches not used in N days")
	out.Println("  --optimize         Run VACUUM and ANALYZE")
	out.Println("  --size             Show database size")
	out.Println()
	out.Println("Example: ggo cleanup --deleted --optimize")
}

// runCleanup performs the selected maintenance steps in a fixed order:
// size, deleted branches, old records, optimize.
func runCleanup(ctx context.Context, st *store.Store, checker store.BranchChecker, opts cleanupOptions) error {
	out := output.FromContext(ctx)

	if opts.size {
		size, err := st.Size(ctx)
		if err != nil {
			return err
		}
		out.Printf("Database size: %s\n", static.FormatSize(size))
	}

	if opts.deleted {
		out.Println("Cleaning up deleted branches...")
		var removed int64
		err := progress.While(log.FromContext(ctx).Writer(), opts.showProgress, "Checking branches...", func() error {
			var err error
			removed, err = st.CleanupDeletedBranches(ctx, checker)
			return err
		})
		if err != nil {
			if ggoerr.IsKind(err, ggoerr.Storage) {
				return err
			}
			log.FromContext(ctx).Warnf("some branches could not be checked and were kept: %v", err)
		}
		out.Printf("Removed %d stale branch records\n", removed)
	}

	if opts.ageSet || opts.optimize {
		out.Printf("Cleaning up branches older than %d days...\n", opts.olderThan)
		removed, err := st.CleanupOldRecords(ctx, opts.olderThan)
		if err != nil {
			return err
		}
		out.Printf("Removed %d old branch records\n", removed)
	}

	if opts.optimize {
		out.Println("Optimizing database...")
		if err := st.Optimize(ctx); err != nil {
			return err
		}
		out.Println("Database optimized (VACUUM and ANALYZE complete)")
	}

	return nil
}
