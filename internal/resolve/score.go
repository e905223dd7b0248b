package resolve

import (
	"cmp"
	"slices"
	"time"

	"github.com/raphi011/ggo/internal/frecency"
	"github.com/raphi011/ggo/internal/match"
	"github.com/raphi011/ggo/internal/store"
)

const (
	// FrecencyMultiplier weights frecency against fuzzy match quality.
	FrecencyMultiplier = 10.0

	// DefaultAutoSelectThreshold is the minimum top/second score ratio for
	// picking the top candidate without asking.
	DefaultAutoSelectThreshold = 2.0
)

// CombinedScore fuses a fuzzy match score with a frecency score.
func CombinedScore(fuzzyScore int, frecencyScore float64) float64 {
	return float64(fuzzyScore) + frecencyScore*FrecencyMultiplier
}

// Ranked is a candidate branch with the signals that placed it.
type Ranked struct {
	Branch string
	// Score is the ranking key: the combined score in fuzzy mode, the
	// frecency score in substring mode.
	Score       float64
	FuzzyScore  int
	Frecency    float64
	SwitchCount int64
	LastUsed    time.Time // zero if never used
	Aliases     []string  // filled by ListMatches only
}

// Rank fuses matcher output with usage records and sorts the result by
// descending score. Ties keep matcher order.
func Rank(candidates []match.Candidate, records []store.UsageRecord, scorer frecency.Scorer, fuzzy bool) []Ranked {
	byBranch := make(map[string]store.UsageRecord, len(records))
	for _, r := range records {
		byBranch[r.Branch] = r
	}

	ranked := make([]Ranked, len(candidates))
	for i, c := range candidates {
		rec, used := byBranch[c.Branch]
		var f float64
		if used {
			f = scorer.RecordScore(rec)
		}

		score := f
		if fuzzy {
			score = CombinedScore(c.Score, f)
		}
		ranked[i] = Ranked{
			Branch:      c.Branch,
			Score:       score,
			FuzzyScore:  c.Score,
			Frecency:    f,
			SwitchCount: rec.SwitchCount,
			LastUsed:    rec.LastUsed,
		}
	}

	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return ranked
}

// Decision is the outcome of [Select].
type Decision int

const (
	// NoCandidates means nothing matched.
	NoCandidates Decision = iota
	// AutoSelect means the top candidate should be checked out directly.
	AutoSelect
	// Choose means the user must pick from the ranked list.
	Choose
)

func (d Decision) String() string {
	switch d {
	case NoCandidates:
		return "no candidates"
	case AutoSelect:
		return "auto-select"
	case Choose:
		return "choose"
	}
	return "unknown"
}

// Select decides what to do with a ranked list sorted by descending score.
// A single candidate is always auto-selected. Otherwise forceInteractive
// defers to the user, and so does a top/second ratio below threshold. A
// second score of 0 always qualifies. A non-positive threshold means
// DefaultAutoSelectThreshold.
func Select(ranked []Ranked, forceInteractive bool, threshold float64) Decision {
	switch {
	case len(ranked) == 0:
		return NoCandidates
	case len(ranked) == 1:
		return AutoSelect
	case forceInteractive:
		return Choose
	}

	if threshold <= 0 {
		threshold = DefaultAutoSelectThreshold
	}
	top, second := ranked[0].Score, ranked[1].Score
	if second == 0 || top/second >= threshold {
		return AutoSelect
	}
	return Choose
}
