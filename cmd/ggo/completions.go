package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/ggo/internal/config"
	"github.com/raphi011/ggo/internal/git"
	"github.com/raphi011/ggo/internal/store"
)

// completePattern offers the current repository's aliases and local
// branches for the pattern argument.
func completePattern(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ctx := context.Background()
	repo, err := git.Open(ctx, workDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var candidates []string
	for _, a := range aliasesFor(ctx, repo.Root()) {
		candidates = append(candidates, a.Name+"\talias for "+a.Branch)
	}
	branches, err := repo.ListLocalBranches(ctx)
	if err == nil {
		candidates = append(candidates, branches...)
	}

	return filterPrefix(candidates, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeAliasArgs completes alias names first, then branch names.
func completeAliasArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx := context.Background()
	repo, err := git.Open(ctx, workDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	switch len(args) {
	case 0:
		var names []string
		for _, a := range aliasesFor(ctx, repo.Root()) {
			names = append(names, a.Name+"\t"+a.Branch)
		}
		return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
	case 1:
		branches, err := repo.ListLocalBranches(ctx)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return filterPrefix(branches, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// aliasesFor reads repo's aliases without creating a database that does
// not exist yet.
func aliasesFor(ctx context.Context, repo string) []store.Alias {
	dataPath, err := config.DataPath()
	if err != nil {
		return nil
	}
	if _, err := os.Stat(dataPath); err != nil {
		return nil
	}

	st, err := store.Open(ctx, dataPath)
	if err != nil {
		return nil
	}
	defer st.Close()

	aliases, err := st.ListAliases(ctx, repo)
	if err != nil {
		return nil
	}
	return aliases
}

// filterPrefix keeps completions whose value (before any tab-separated
// description) starts with prefix.
func filterPrefix(candidates []string, prefix string) []string {
	var matches []string
	for _, c := range candidates {
		value, _, _ := strings.Cut(c, "\t")
		if strings.HasPrefix(value, prefix) {
			matches = append(matches, c)
		}
	}
	return matches
}
