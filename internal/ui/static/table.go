// Package static provides non-interactive terminal output components.
//
// This package renders the tables ggo prints to stdout, such as the
// top-branches section of `ggo stats`.
package static

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/dustin/go-humanize"

	"github.com/raphi011/ggo/internal/frecency"
	"github.com/raphi011/ggo/internal/ui/styles"
)

// TopBranchesHeaders are the column headers of [TopBranchesTable].
var TopBranchesHeaders = []string{"#", "REPO", "BRANCH", "SCORE", "SWITCHES", "LAST USED"}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
// Columns listed in rightAligned are aligned right (for numbers).
func RenderTable(headers []string, rows [][]string, rightAligned ...int) string {
	if len(rows) == 0 {
		return ""
	}

	right := make(map[int]bool, len(rightAligned))
	for _, c := range rightAligned {
		right[c] = true
	}

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().PaddingRight(2)
			if right[col] {
				s = s.Align(lipgloss.Right)
			}
			if row == table.HeaderRow {
				return s.Bold(true)
			}
			return s
		})

	var output strings.Builder
	output.WriteString(t.String())
	output.WriteString("\n")
	return output.String()
}

// TopBranchRow builds one row of the top-branches table. A LAST USED cell
// older than staleDays is highlighted; staleDays <= 0 disables that.
func TopBranchRow(rank int, b frecency.ScoredBranch, now time.Time, staleDays int) []string {
	age := frecency.FormatRelativeTime(b.LastUsed, now)
	if staleDays > 0 && now.Sub(b.LastUsed) > time.Duration(staleDays)*24*time.Hour {
		age = styles.WarningStyle.Render(age)
	}

	return []string{
		strconv.Itoa(rank),
		filepath.Base(b.Repo),
		b.Name,
		fmt.Sprintf("%.1f", b.Score),
		strconv.FormatInt(b.SwitchCount, 10),
		age,
	}
}

// TopBranchesTable renders the first limit entries of ranked.
func TopBranchesTable(ranked []frecency.ScoredBranch, now time.Time, limit, staleDays int) string {
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	rows := make([][]string, len(ranked))
	for i, b := range ranked {
		rows[i] = TopBranchRow(i+1, b, now, staleDays)
	}
	return RenderTable(TopBranchesHeaders, rows, 0, 3, 4)
}

// FormatSize renders a byte count for humans, e.g. "48 kB".
func FormatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.Bytes(uint64(bytes))
}
