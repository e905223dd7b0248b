package main

import (
	"context"
	"time"

	"github.com/raphi011/ggo/internal/config"
	"github.com/raphi011/ggo/internal/git"
	"github.com/raphi011/ggo/internal/log"
	"github.com/raphi011/ggo/internal/resolve"
	"github.com/raphi011/ggo/internal/store"
)

// session bundles what a repository-scoped command needs: the repo, the
// usage store and a resolver configured from the effective config.
type session struct {
	repo     *git.Repo
	store    *store.Store
	resolver *resolve.Resolver
	cfg      config.Config
}

// openSession opens the repository containing the working directory and
// the usage store at the default data path.
func openSession(ctx context.Context) (*session, error) {
	dataPath, err := config.DataPath()
	if err != nil {
		return nil, err
	}
	return newSession(ctx, workDir, dataPath, cfg)
}

func newSession(ctx context.Context, dir, dataPath string, global config.Config) (*session, error) {
	repo, err := git.Open(ctx, dir)
	if err != nil {
		return nil, err
	}

	effective, err := config.ForRepo(global, repo.Root())
	if err != nil {
		log.FromContext(ctx).Warnf("%v", err)
	}

	st, err := store.Open(ctx, dataPath)
	if err != nil {
		return nil, err
	}
	log.FromContext(ctx).Debug("opened store", "path", dataPath, "repo", repo.Root())

	return &session{
		repo:  repo,
		store: st,
		resolver: resolve.New(repo, st, resolve.Config{
			HalfLife:            effective.Frecency.HalfLife(),
			AutoSelectThreshold: effective.Behavior.AutoSelectThreshold,
		}),
		cfg: effective,
	}, nil
}

// options combines per-call flags with the configured defaults.
func (s *session) options(ignoreCase, noFuzzy, interactive bool) resolve.Options {
	return resolve.Options{
		IgnoreCase:       ignoreCase || s.cfg.Behavior.DefaultIgnoreCase,
		Fuzzy:            s.cfg.Behavior.DefaultFuzzy && !noFuzzy,
		ForceInteractive: interactive,
	}
}

func (s *session) now() time.Time {
	return s.resolver.Scorer().Now()
}

func (s *session) Close() {
	_ = s.store.Close()
}
