package resolve

import (
	"context"
	"slices"

	"github.com/raphi011/ggo/internal/ggoerr"
	"github.com/raphi011/ggo/internal/log"
	"github.com/raphi011/ggo/internal/validate"
)

// Switch checks out branch and records the switch. The branch is re-checked
// against the live branch list first. The branch being left becomes the
// previous-branch pointer unless it is the target itself. Only validation,
// lookup and checkout failures are returned.
func (r *Resolver) Switch(ctx context.Context, branch string) error {
	if err := validate.BranchName(branch); err != nil {
		return err
	}

	branches, err := r.git.ListLocalBranches(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(branches, branch) {
		return ggoerr.NewBranchNotFound(branch)
	}

	l := log.FromContext(ctx)
	if current, err := r.git.CurrentBranch(ctx); err != nil {
		l.Debug("no current branch to remember", "error", err)
	} else if current != branch {
		if err := r.store.SavePreviousBranch(ctx, r.Repo(), current); err != nil {
			l.Warnf("could not save previous branch, 'ggo -' may not work correctly: %v", err)
		}
	}

	if err := r.git.Checkout(ctx, branch); err != nil {
		return err
	}

	r.RecordCheckoutOutcome(ctx, branch)
	return nil
}

// RecordCheckoutOutcome counts a completed checkout of branch. Failure is
// logged as a warning since the checkout itself already succeeded.
func (r *Resolver) RecordCheckoutOutcome(ctx context.Context, branch string) {
	if err := r.store.RecordCheckout(ctx, r.Repo(), branch); err != nil {
		log.FromContext(ctx).Warnf("could not save branch usage, frecency tracking may be incomplete: %v", err)
	}
}

// Previous returns the branch checked out before the most recent switch.
func (r *Resolver) Previous(ctx context.Context) (string, error) {
	branch, ok, err := r.store.PreviousBranch(ctx, r.Repo())
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ggoerr.NewNoPreviousBranch()
	}
	return branch, nil
}
