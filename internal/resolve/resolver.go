package resolve

import (
	"context"
	"slices"
	"time"

	"github.com/raphi011/ggo/internal/frecency"
	"github.com/raphi011/ggo/internal/ggoerr"
	"github.com/raphi011/ggo/internal/log"
	"github.com/raphi011/ggo/internal/match"
	"github.com/raphi011/ggo/internal/store"
	"github.com/raphi011/ggo/internal/validate"
)

// Git is the repository the resolver works in. *git.Repo implements it.
type Git interface {
	Root() string
	ListLocalBranches(ctx context.Context) ([]string, error)
	CurrentBranch(ctx context.Context) (string, error)
	Checkout(ctx context.Context, branch string) error
}

// Store is the usage data the resolver reads and records. *store.Store
// implements it.
type Store interface {
	Records(ctx context.Context, repo string) ([]store.UsageRecord, error)
	Alias(ctx context.Context, repo, alias string) (string, bool, error)
	AliasesForBranch(ctx context.Context, repo, branch string) ([]string, error)
	RecordCheckout(ctx context.Context, repo, branch string) error
	SavePreviousBranch(ctx context.Context, repo, branch string) error
	PreviousBranch(ctx context.Context, repo string) (string, bool, error)
}

// Config tunes ranking and selection.
type Config struct {
	HalfLife            time.Duration
	AutoSelectThreshold float64
	Now                 func() time.Time // nil means time.Now
}

// Options are per-invocation matching flags.
type Options struct {
	IgnoreCase       bool
	Fuzzy            bool
	ForceInteractive bool
}

// Outcome is the result of [Resolver.Resolve]. When Decision is AutoSelect
// Branch holds the branch to check out; when it is Choose the user must pick
// one of Candidates.
type Outcome struct {
	Decision   Decision
	Branch     string
	Alias      string // set when Branch came from an alias
	Candidates []Ranked
}

// NeedsChoice reports whether the caller must ask the user to pick.
func (o Outcome) NeedsChoice() bool {
	return o.Decision == Choose
}

// Resolver resolves patterns to branches within one repository.
type Resolver struct {
	git       Git
	store     Store
	scorer    frecency.Scorer
	threshold float64
}

// New creates a resolver for the repository behind g.
func New(g Git, s Store, cfg Config) *Resolver {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	halfLife := cfg.HalfLife
	if halfLife <= 0 {
		halfLife = frecency.DefaultHalfLife
	}
	return &Resolver{
		git:       g,
		store:     s,
		scorer:    frecency.Scorer{HalfLife: halfLife, Now: now},
		threshold: cfg.AutoSelectThreshold,
	}
}

// Repo returns the repository root used as the store partition key.
func (r *Resolver) Repo() string {
	return r.git.Root()
}

// Scorer returns the frecency scorer the resolver ranks with.
func (r *Resolver) Scorer() frecency.Scorer {
	return r.scorer
}

// Resolve maps pattern to a branch. An alias defined in this repository
// whose target still exists resolves immediately. Otherwise the branches
// matching pattern are ranked and [Select] decides between auto-selecting
// the top one and handing the ranked list back for interactive choice.
func (r *Resolver) Resolve(ctx context.Context, pattern string, opts Options) (Outcome, error) {
	if err := validate.Pattern(pattern); err != nil {
		return Outcome{}, err
	}

	if branch, ok := r.ResolveAlias(ctx, pattern); ok {
		return Outcome{Decision: AutoSelect, Branch: branch, Alias: pattern}, nil
	}

	ranked, err := r.rank(ctx, pattern, opts)
	if err != nil {
		return Outcome{}, err
	}

	decision := Select(ranked, opts.ForceInteractive, r.threshold)
	log.FromContext(ctx).Debug("resolved pattern",
		"pattern", pattern, "candidates", len(ranked), "decision", decision)

	switch decision {
	case NoCandidates:
		return Outcome{}, ggoerr.NewNoMatchingBranches(pattern, opts.Fuzzy)
	case AutoSelect:
		return Outcome{Decision: AutoSelect, Branch: ranked[0].Branch, Candidates: ranked}, nil
	default:
		return Outcome{Decision: Choose, Candidates: ranked}, nil
	}
}

// ListMatches returns every branch matching pattern in ranked order, each
// annotated with the aliases pointing at it. It never writes to the store.
func (r *Resolver) ListMatches(ctx context.Context, pattern string, opts Options) ([]Ranked, error) {
	if err := validate.Pattern(pattern); err != nil {
		return nil, err
	}

	ranked, err := r.rank(ctx, pattern, opts)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, ggoerr.NewNoMatchingBranches(pattern, opts.Fuzzy)
	}

	l := log.FromContext(ctx)
	for i := range ranked {
		aliases, err := r.store.AliasesForBranch(ctx, r.Repo(), ranked[i].Branch)
		if err != nil {
			l.Debug("alias lookup failed", "branch", ranked[i].Branch, "error", err)
			continue
		}
		ranked[i].Aliases = aliases
	}
	return ranked, nil
}

// ResolveAlias looks pattern up as an alias of the current repository. A hit
// counts only if its target is in a freshly listed set of local branches;
// a stale alias logs a warning and reports a miss.
func (r *Resolver) ResolveAlias(ctx context.Context, pattern string) (string, bool) {
	l := log.FromContext(ctx)

	branch, ok, err := r.store.Alias(ctx, r.Repo(), pattern)
	if err != nil {
		l.Debug("alias lookup failed", "alias", pattern, "error", err)
		return "", false
	}
	if !ok {
		return "", false
	}

	branches, err := r.git.ListLocalBranches(ctx)
	if err != nil {
		l.Debug("listing branches for alias failed", "alias", pattern, "error", err)
		return "", false
	}
	if !slices.Contains(branches, branch) {
		l.Warnf("%s", ggoerr.NewAliasStale(pattern, branch))
		return "", false
	}
	return branch, true
}

// rank lists local branches, filters them by pattern and ranks the matches.
// An empty result is not an error here.
func (r *Resolver) rank(ctx context.Context, pattern string, opts Options) ([]Ranked, error) {
	branches, err := r.git.ListLocalBranches(ctx)
	if err != nil {
		return nil, err
	}

	records := r.loadRecords(ctx)
	candidates := match.For(opts.Fuzzy).Match(branches, pattern, opts.IgnoreCase)
	return Rank(candidates, records, r.scorer, opts.Fuzzy), nil
}

// loadRecords returns this repository's usage records. A storage failure
// degrades ranking to match quality only.
func (r *Resolver) loadRecords(ctx context.Context) []store.UsageRecord {
	records, err := r.store.Records(ctx, r.Repo())
	if err != nil {
		log.FromContext(ctx).Warnf("could not load branch history, frecency ranking unavailable: %v", err)
		return nil
	}
	return records
}
