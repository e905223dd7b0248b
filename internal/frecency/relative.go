package frecency

import (
	"fmt"
	"time"
)

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
)

// FormatRelativeTime renders the age of t relative to now, e.g. "3h ago".
// Anything under a minute (or in the future) is "just now".
func FormatRelativeTime(t, now time.Time) string {
	age := now.Sub(t)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age/time.Minute))
	case age < day:
		return fmt.Sprintf("%dh ago", int(age/time.Hour))
	case age < week:
		return fmt.Sprintf("%dd ago", int(age/day))
	case age < month:
		return fmt.Sprintf("%dw ago", int(age/week))
	default:
		return fmt.Sprintf("%dmo ago", int(age/month))
	}
}
