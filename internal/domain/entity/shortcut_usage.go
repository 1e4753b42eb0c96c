package entity

import "time"

// ShortcutUsage counts how often a keyboard shortcut fired an action.
type ShortcutUsage struct {
	ActionID     string    `json:"action_id"`
	Count        int64     `json:"count"`
	FirstFiredAt time.Time `json:"first_fired_at"`
	LastFiredAt  time.Time `json:"last_fired_at"`
}

// Since returns the time elapsed since the action last fired.
func (u *ShortcutUsage) Since(now time.Time) time.Duration {
	if u.LastFiredAt.IsZero() {
		return 0
	}
	return now.Sub(u.LastFiredAt)
}
