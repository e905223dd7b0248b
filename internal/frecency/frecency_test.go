package frecency

import (
	"math"
	"testing"
	"time"

	"github.com/raphi011/ggo/internal/store"
)

var now = time.Unix(1_700_000_000, 0)

func fixedScorer() Scorer {
	return Scorer{HalfLife: DefaultHalfLife, Now: func() time.Time { return now }}
}

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		count int64
		age   time.Duration
		want  float64
	}{
		{"zero count fresh", 0, 0, 0},
		{"zero count old", 0, 400 * day, 0},
		{"fresh", 10, 0, 10},
		{"one half-life", 10, DefaultHalfLife, 5},
		{"two half-lives", 8, 2 * DefaultHalfLife, 2},
		{"future timestamp clamps", 4, -time.Hour, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Score(tt.count, now.Add(-tt.age), now, DefaultHalfLife)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score(%d, age %v) = %v, want %v", tt.count, tt.age, got, tt.want)
			}
		})
	}
}

func TestScore_StrictlyDecreasing(t *testing.T) {
	t.Parallel()

	prev := math.Inf(1)
	for _, age := range []time.Duration{0, time.Second, time.Minute, time.Hour, day, week, month, 365 * day} {
		got := Score(3, now.Add(-age), now, DefaultHalfLife)
		if got >= prev {
			t.Fatalf("Score at age %v = %v, not below %v", age, got, prev)
		}
		prev = got
	}
}

func TestScore_RecentIsNearCount(t *testing.T) {
	t.Parallel()

	got := Score(10, now.Add(-time.Minute), now, DefaultHalfLife)
	if got <= 9.9 || got > 10 {
		t.Errorf("Score one minute ago = %v, want just under 10", got)
	}
}

func TestScore_CustomHalfLife(t *testing.T) {
	t.Parallel()

	got := Score(6, now.Add(-24*time.Hour), now, 24*time.Hour)
	if math.Abs(got-3) > 1e-9 {
		t.Errorf("Score with 1d half-life = %v, want 3", got)
	}
	if got := Score(6, now, now, 0); got != 6 {
		t.Errorf("Score with zero half-life = %v, want default behaviour", got)
	}
}

func TestRankBranches(t *testing.T) {
	t.Parallel()

	records := []store.UsageRecord{
		{Branch: "old", SwitchCount: 20, LastUsed: now.Add(-4 * DefaultHalfLife)}, // 1.25
		{Branch: "tie-a", SwitchCount: 2, LastUsed: now},
		{Branch: "hot", SwitchCount: 5, LastUsed: now},
		{Branch: "tie-b", SwitchCount: 2, LastUsed: now},
	}

	ranked := fixedScorer().RankBranches(records)
	var names []string
	for _, r := range ranked {
		names = append(names, r.Name)
	}
	want := []string{"hot", "tie-a", "tie-b", "old"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("RankBranches = %v, want %v", names, want)
		}
	}
	if ranked[0].SwitchCount != 5 || !ranked[0].LastUsed.Equal(now) {
		t.Errorf("ranked[0] lost record fields: %+v", ranked[0])
	}
}

func TestSortByFrecency(t *testing.T) {
	t.Parallel()

	names := []string{"never-1", "used", "never-2", "more-used"}
	records := []store.UsageRecord{
		{Branch: "used", SwitchCount: 1, LastUsed: now},
		{Branch: "more-used", SwitchCount: 3, LastUsed: now},
		{Branch: "not-listed", SwitchCount: 99, LastUsed: now},
	}

	got := fixedScorer().SortByFrecency(names, records)
	want := []BranchScore{
		{"more-used", 3},
		{"used", 1},
		{"never-1", 0},
		{"never-2", 0},
	}
	if len(got) != len(want) {
		t.Fatalf("SortByFrecency returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortByFrecency[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFormatRelativeTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		age  time.Duration
		want string
	}{
		{0, "just now"},
		{59 * time.Second, "just now"},
		{-time.Hour, "just now"},
		{time.Minute, "1m ago"},
		{59 * time.Minute, "59m ago"},
		{time.Hour, "1h ago"},
		{23 * time.Hour, "23h ago"},
		{day, "1d ago"},
		{6 * day, "6d ago"},
		{week, "1w ago"},
		{29 * day, "4w ago"},
		{month, "1mo ago"},
		{400 * day, "13mo ago"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := FormatRelativeTime(now.Add(-tt.age), now); got != tt.want {
				t.Errorf("FormatRelativeTime(age %v) = %q, want %q", tt.age, got, tt.want)
			}
		})
	}
}
