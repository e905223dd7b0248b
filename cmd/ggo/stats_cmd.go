package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/raphi011/ggo/internal/config"
	"github.com/raphi011/ggo/internal/frecency"
	"github.com/raphi011/ggo/internal/output"
	"github.com/raphi011/ggo/internal/store"
	"github.com/raphi011/ggo/internal/ui/static"
	"github.com/raphi011/ggo/internal/ui/styles"
)

const (
	topBranchesLimit = 10
	staleAfterDays   = 30
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   "Show usage statistics",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Show usage statistics across all repositories.

Prints total switches, tracked branches and repositories, the database
location and the top branches by frecency.`,
		Example: `  ggo stats
  ggo --stats   # same`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.Context())
		},
	}
}

func runStats(ctx context.Context) error {
	dataPath, err := config.DataPath()
	if err != nil {
		return err
	}
	st, err := store.Open(ctx, dataPath)
	if err != nil {
		return err
	}
	defer st.Close()

	return showStats(ctx, st, frecency.NewScorer(cfg.Frecency.HalfLife()))
}

// showStats prints database totals followed by the globally top-ranked
// branches.
func showStats(ctx context.Context, st *store.Store, scorer frecency.Scorer) error {
	out := output.FromContext(ctx)

	stats, err := st.Stats(ctx)
	if err != nil {
		return err
	}

	out.Println(styles.TitleStyle.Render("ggo Statistics"))
	out.Println()
	out.Printf("Total branch switches: %d\n", stats.TotalSwitches)
	out.Printf("Unique branches tracked: %d\n", stats.UniqueBranches)
	out.Printf("Repositories: %d\n", stats.UniqueRepos)
	out.Printf("Database location: %s\n", stats.Path)

	records, err := st.AllRecords(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	out.Println()
	out.Println(styles.TitleStyle.Render("Top branches by frecency:"))
	out.Println()
	out.Print(static.TopBranchesTable(scorer.RankBranches(records), scorer.Now(), topBranchesLimit, staleAfterDays))
	return nil
}
