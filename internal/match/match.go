// Package match filters branch names against a user pattern.
//
// Two strategies implement [Matcher]: [Substring] keeps names containing the
// pattern verbatim, [Fuzzy] keeps names containing the pattern as a
// subsequence and scores how well it aligns. Both treat an empty pattern as
// matching every candidate.
package match

import (
	"cmp"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// scoreBase lifts fuzzy scores above zero. The library penalises every
// unmatched character, so long names with a valid alignment score below zero.
const scoreBase = 100

// Candidate is a branch name that survived filtering. Score is the fuzzy
// alignment quality, always positive for a non-empty pattern; it is 0 for
// substring matches and for the empty pattern.
type Candidate struct {
	Branch string
	Score  int
}

// Matcher filters candidates against a pattern.
type Matcher interface {
	Match(candidates []string, pattern string, ignoreCase bool) []Candidate
}

// For returns the fuzzy matcher when useFuzzy is set, else substring.
func For(useFuzzy bool) Matcher {
	if useFuzzy {
		return Fuzzy{}
	}
	return Substring{}
}

// Substring matches names that contain the pattern. Results keep input order.
type Substring struct{}

func (Substring) Match(candidates []string, pattern string, ignoreCase bool) []Candidate {
	needle := pattern
	if ignoreCase {
		needle = strings.ToLower(pattern)
	}

	var out []Candidate
	for _, c := range candidates {
		hay := c
		if ignoreCase {
			hay = strings.ToLower(c)
		}
		if strings.Contains(hay, needle) {
			out = append(out, Candidate{Branch: c})
		}
	}
	return out
}

// Fuzzy matches names that contain the pattern as a subsequence, scored by
// github.com/sahilm/fuzzy (bonuses for adjacent matches, word starts and a
// matching first character). Results are sorted by descending score; ties
// keep input order.
type Fuzzy struct{}

func (Fuzzy) Match(candidates []string, pattern string, ignoreCase bool) []Candidate {
	if pattern == "" {
		out := make([]Candidate, len(candidates))
		for i, c := range candidates {
			out[i] = Candidate{Branch: c}
		}
		return out
	}

	// The library always folds case, so a case-sensitive search narrows the
	// input to exact-case subsequence hits first.
	pool := candidates
	if !ignoreCase {
		pool = nil
		for _, c := range candidates {
			if isSubsequence(pattern, c) {
				pool = append(pool, c)
			}
		}
	}

	matches := fuzzy.Find(pattern, pool)
	if len(matches) == 0 {
		return nil
	}
	slices.SortFunc(matches, func(a, b fuzzy.Match) int {
		return cmp.Or(cmp.Compare(b.Score, a.Score), cmp.Compare(a.Index, b.Index))
	})

	out := make([]Candidate, len(matches))
	shift := positiveShift(matches[len(matches)-1].Score)
	for i, m := range matches {
		out[i] = Candidate{Branch: m.Str, Score: m.Score + shift}
	}
	return out
}

// positiveShift returns the offset that maps the lowest raw score to at
// least 1. A fixed base keeps ratios between similar alignments close to 1.
func positiveShift(lowest int) int {
	if lowest+scoreBase < 1 {
		return 1 - lowest
	}
	return scoreBase
}

// isSubsequence reports whether every rune of pattern appears in s in order.
func isSubsequence(pattern, s string) bool {
	p := []rune(pattern)
	i := 0
	for _, r := range s {
		if i == len(p) {
			break
		}
		if r == p[i] {
			i++
		}
	}
	return i == len(p)
}
