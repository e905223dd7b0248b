package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/raphi011/ggo/internal/output"
	"github.com/raphi011/ggo/internal/resolve"
	"github.com/raphi011/ggo/internal/ui/prompt"
)

// runCheckout resolves pattern and switches to the chosen branch. When the
// ranking is ambiguous the user picks from the candidates; without a
// terminal the candidates are printed instead.
func runCheckout(ctx context.Context, sess *session, pattern string, opts resolve.Options) error {
	out := output.FromContext(ctx)

	outcome, err := sess.resolver.Resolve(ctx, pattern, opts)
	if err != nil {
		return err
	}

	branch := outcome.Branch
	if outcome.Alias != "" {
		out.Printf("Using alias '%s' → '%s'\n", outcome.Alias, branch)
	}

	if outcome.NeedsChoice() {
		branch, err = prompt.SelectBranch(outcome.Candidates, sess.now())
		if errors.Is(err, prompt.ErrNotInteractive) {
			printMatches(out, pattern, opts.Fuzzy, outcome.Candidates)
			return fmt.Errorf("%d branches match '%s' without a clear winner\n\nUse a more specific pattern, or run in a terminal to pick one", len(outcome.Candidates), pattern)
		}
		if err != nil {
			return err
		}
	}

	if err := sess.resolver.Switch(ctx, branch); err != nil {
		return err
	}
	out.Printf("Switched to branch '%s'\n", branch)
	return nil
}

// runPrevious switches back to the branch that was checked out before the
// last switch in this repository.
func runPrevious(ctx context.Context, sess *session) error {
	branch, err := sess.resolver.Previous(ctx)
	if err != nil {
		return err
	}
	if err := sess.resolver.Switch(ctx, branch); err != nil {
		return err
	}
	output.FromContext(ctx).Printf("Switched to branch '%s'\n", branch)
	return nil
}
