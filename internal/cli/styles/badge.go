package styles

import (
	"fmt"
	"strings"
	"time"
)

// OutcomeBadge renders a dispatch outcome. Failures use the error color and
// forwarded keys the muted one.
func (t *Theme) OutcomeBadge(outcome string, consumed bool, failed bool) string {
	switch {
	case failed:
		return t.BadgeError.Render(outcome)
	case !consumed:
		return t.BadgeMuted.Render(outcome)
	default:
		return t.Badge.Render(outcome)
	}
}

// KeyCaps renders shortcut names as key caps separated by a space.
func (t *Theme) KeyCaps(names []string) string {
	caps := make([]string, len(names))
	for i, n := range names {
		caps[i] = t.KeyCap.Render(n)
	}
	return strings.Join(caps, " ")
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	return relativeTime(time.Now(), tm)
}

func relativeTime(now, tm time.Time) string {
	if tm.IsZero() {
		return "never"
	}
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
	case diff < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(diff.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(diff.Hours()/(24*365)))
	}
}
