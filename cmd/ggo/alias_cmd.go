package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/ggo/internal/ggoerr"
	"github.com/raphi011/ggo/internal/log"
	"github.com/raphi011/ggo/internal/output"
	"github.com/raphi011/ggo/internal/validate"
)

func newAliasCmd() *cobra.Command {
	var (
		list            bool
		remove          bool
		copyToClipboard bool
	)

	cmd := &cobra.Command{
		Use:     "alias [name] [branch]",
		Short:   "Manage branch aliases",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(2),
		Long: `Manage short names for branches of the current repository.

With a name and a branch, creates the alias (or points it somewhere new).
With only a name, shows where the alias points. Aliases are scoped to the
repository they were created in and take precedence over pattern matching.`,
		Example: `  ggo alias m master        # Create alias 'm' for master
  ggo alias m               # Show where 'm' points
  ggo alias --list          # List aliases of this repository
  ggo alias m --remove      # Remove alias 'm'
  ggo alias m --copy        # Copy the target branch to the clipboard`,
		ValidArgsFunction: completeAliasArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.Close()

			if list {
				return listAliases(ctx, sess)
			}
			if len(args) == 0 {
				return fmt.Errorf("alias name is required")
			}

			name := args[0]
			switch {
			case remove:
				return removeAlias(ctx, sess, name)
			case len(args) == 2:
				return createAlias(ctx, sess, name, args[1])
			default:
				return showAlias(ctx, sess, name, copyToClipboard)
			}
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "List aliases of the current repository")
	cmd.Flags().BoolVarP(&remove, "remove", "r", false, "Remove the alias")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the alias target to the clipboard")
	cmd.MarkFlagsMutuallyExclusive("list", "remove")

	return cmd
}

func listAliases(ctx context.Context, sess *session) error {
	out := output.FromContext(ctx)

	aliases, err := sess.store.ListAliases(ctx, sess.repo.Root())
	if err != nil {
		return err
	}
	if len(aliases) == 0 {
		out.Println("No aliases defined for this repository")
		return nil
	}

	out.Println("Aliases for this repository:")
	out.Println()
	for _, a := range aliases {
		out.Printf("  %s → %s\n", a.Name, a.Branch)
	}
	return nil
}

// createAlias validates both names and requires branch to exist locally
// before storing the alias.
func createAlias(ctx context.Context, sess *session, name, branch string) error {
	if err := validate.AliasName(name); err != nil {
		return err
	}
	if err := validate.BranchName(branch); err != nil {
		return err
	}

	branches, err := sess.repo.ListLocalBranches(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(branches, branch) {
		return ggoerr.NewBranchNotFound(branch)
	}

	if err := sess.store.CreateAlias(ctx, sess.repo.Root(), name, branch); err != nil {
		return err
	}
	output.FromContext(ctx).Printf("Created alias '%s' → '%s'\n", name, branch)
	return nil
}

func removeAlias(ctx context.Context, sess *session, name string) error {
	removed, err := sess.store.DeleteAlias(ctx, sess.repo.Root(), name)
	if err != nil {
		return err
	}
	if !removed {
		output.FromContext(ctx).Printf("Alias '%s' not found\n", name)
		return nil
	}
	output.FromContext(ctx).Printf("Removed alias '%s'\n", name)
	return nil
}

func showAlias(ctx context.Context, sess *session, name string, copyTarget bool) error {
	out := output.FromContext(ctx)

	branch, ok, err := sess.store.Alias(ctx, sess.repo.Root(), name)
	if err != nil {
		return err
	}
	if !ok {
		out.Printf("Alias '%s' not found\n", name)
		return nil
	}
	out.Printf("%s → %s\n", name, branch)

	if copyTarget {
		if err := clipboard.WriteAll(branch); err != nil {
			log.FromContext(ctx).Warnf("failed to copy to clipboard: %v", err)
		}
	}
	return nil
}
