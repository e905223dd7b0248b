package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/raphi011/ggo/internal/log"
	"github.com/raphi011/ggo/internal/output"
	"github.com/raphi011/ggo/internal/resolve"
	"github.com/raphi011/ggo/internal/ui/styles"
)

// runList prints the branches matching pattern in ranked order without
// checking anything out.
func runList(ctx context.Context, sess *session, pattern string, opts resolve.Options, copyTarget bool) error {
	ranked, err := sess.resolver.ListMatches(ctx, pattern, opts)
	if err != nil {
		return err
	}

	printMatches(output.FromContext(ctx), pattern, opts.Fuzzy, ranked)

	if copyTarget {
		if err := clipboard.WriteAll(ranked[0].Branch); err != nil {
			log.FromContext(ctx).Warnf("failed to copy to clipboard: %v", err)
		}
	}
	return nil
}

// printMatches writes the ranked list, marking the checkout target.
func printMatches(out *output.Printer, pattern string, fuzzy bool, ranked []resolve.Ranked) {
	mode := "substring matching"
	if fuzzy {
		mode = "fuzzy matching"
	}
	out.Printf("Branches matching '%s' (%s + frecency):\n\n", pattern, mode)

	for i, r := range ranked {
		out.Println(formatMatch(r, i == 0))
	}

	if len(ranked) > 1 {
		out.Printf("\n(%d matches, %s indicates checkout target)\n", len(ranked), styles.Marker)
	}
}

// formatMatch renders one list line: marker, branch, score when positive
// and the aliases pointing at the branch.
func formatMatch(r resolve.Ranked, target bool) string {
	var b strings.Builder
	b.WriteString("  ")
	if target {
		b.WriteString(styles.Marker)
	} else {
		b.WriteString(" ")
	}
	b.WriteString(" ")
	b.WriteString(r.Branch)
	if r.Score > 0 {
		fmt.Fprintf(&b, " (%.1f)", r.Score)
	}
	if len(r.Aliases) > 0 {
		fmt.Fprintf(&b, " [alias: %s]", strings.Join(r.Aliases, ", "))
	}
	return b.String()
}
