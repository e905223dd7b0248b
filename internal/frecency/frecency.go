// Package frecency turns usage records into time-decayed ranking scores.
//
// A record's score is its switch count weighted by exponential decay of its
// age: score = count * 2^(-age/halfLife). A branch used ten times a minute
// ago scores just under 10; the same branch a half-life later scores 5.
package frecency

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/raphi011/ggo/internal/store"
)

// DefaultHalfLife is the age at which a record's weight halves.
const DefaultHalfLife = 7 * 24 * time.Hour

// Score returns switchCount * 2^(-age/halfLife), where age = now - lastUsed.
// A non-positive switchCount scores 0. Ages below zero (clock skew) count
// as zero. A non-positive halfLife falls back to DefaultHalfLife.
func Score(switchCount int64, lastUsed, now time.Time, halfLife time.Duration) float64 {
	if switchCount <= 0 {
		return 0
	}
	if halfLife <= 0 {
		halfLife = DefaultHalfLife
	}
	age := max(now.Sub(lastUsed), 0)
	return float64(switchCount) * math.Exp2(-age.Seconds()/halfLife.Seconds())
}

// Scorer scores records against a fixed half-life and clock.
type Scorer struct {
	HalfLife time.Duration
	Now      func() time.Time
}

// NewScorer returns a Scorer using the wall clock.
func NewScorer(halfLife time.Duration) Scorer {
	return Scorer{HalfLife: halfLife, Now: time.Now}
}

func (s Scorer) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// RecordScore scores a single usage record.
func (s Scorer) RecordScore(r store.UsageRecord) float64 {
	return Score(r.SwitchCount, r.LastUsed, s.now(), s.HalfLife)
}

// ScoredBranch is a usage record with its computed score.
type ScoredBranch struct {
	Repo        string
	Name        string
	Score       float64
	SwitchCount int64
	LastUsed    time.Time
}

// RankBranches scores records and sorts them by descending score. Records
// with equal scores keep their input order.
func (s Scorer) RankBranches(records []store.UsageRecord) []ScoredBranch {
	now := s.now()
	ranked := make([]ScoredBranch, len(records))
	for i, r := range records {
		ranked[i] = ScoredBranch{
			Repo:        r.RepoPath,
			Name:        r.Branch,
			Score:       Score(r.SwitchCount, r.LastUsed, now, s.HalfLife),
			SwitchCount: r.SwitchCount,
			LastUsed:    r.LastUsed,
		}
	}
	slices.SortStableFunc(ranked, func(a, b ScoredBranch) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return ranked
}

// BranchScore is a branch name paired with its frecency score.
type BranchScore struct {
	Name  string
	Score float64
}

// Scores maps branch name to score for every record.
func (s Scorer) Scores(records []store.UsageRecord) map[string]float64 {
	now := s.now()
	scores := make(map[string]float64, len(records))
	for _, r := range records {
		scores[r.Branch] = Score(r.SwitchCount, r.LastUsed, now, s.HalfLife)
	}
	return scores
}

// SortByFrecency pairs every name with its score (0 when no record exists)
// and sorts by descending score. Never-used names end up last, in input
// order.
func (s Scorer) SortByFrecency(names []string, records []store.UsageRecord) []BranchScore {
	scores := s.Scores(records)
	out := make([]BranchScore, len(names))
	for i, name := range names {
		out[i] = BranchScore{Name: name, Score: scores[name]}
	}
	slices.SortStableFunc(out, func(a, b BranchScore) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return out
}
