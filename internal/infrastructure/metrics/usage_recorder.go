// Package metrics records keyboard shortcut usage.
package metrics

import (
	"context"
	"time"

	"github.com/bnema/keyroute/internal/application/port"
	"github.com/bnema/keyroute/internal/domain/repository"
	"github.com/bnema/keyroute/internal/logging"
)

// UsageRecorder persists one counter increment per fired shortcut.
type UsageRecorder struct {
	repo    repository.ShortcutUsageRepository
	enabled bool
	now     func() time.Time
}

var _ port.ShortcutMetrics = (*UsageRecorder)(nil)

// NewUsageRecorder creates a recorder. A disabled recorder drops every event.
func NewUsageRecorder(repo repository.ShortcutUsageRepository, enabled bool) *UsageRecorder {
	return &UsageRecorder{
		repo:    repo,
		enabled: enabled && repo != nil,
		now:     time.Now,
	}
}

// Enabled reports whether events are persisted.
func (r *UsageRecorder) Enabled() bool {
	return r.enabled
}

// KeyboardShortcutFired records that actionID fired from a shortcut.
// Storage failures are logged; they never reach the dispatcher.
func (r *UsageRecorder) KeyboardShortcutFired(ctx context.Context, actionID string) {
	if !r.enabled {
		return
	}
	if err := r.repo.Increment(ctx, actionID, r.now()); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("action_id", actionID).
			Msg("failed to record shortcut usage")
	}
}
