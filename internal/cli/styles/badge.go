package styles

import (
	"fmt"
	"time"
)

// TimeBadge renders a time relative to now.
func (t *Theme) TimeBadge(tm, now time.Time) string {
	return t.BadgeMuted.Render(RelativeTime(tm, now))
}

// RelativeTime formats tm as a short age relative to now.
func RelativeTime(tm, now time.Time) string {
	diff := now.Sub(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(diff.Hours()/(24*7)))
	default:
		return tm.Format("Jan 2, 2006")
	}
}
