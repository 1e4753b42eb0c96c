package repository

import (
	"context"
	"time"

	"github.com/bnema/keyroute/internal/domain/entity"
)

// ShortcutUsageRepository persists per-action shortcut usage counters.
type ShortcutUsageRepository interface {
	// Increment records one firing of actionID at the given time.
	Increment(ctx context.Context, actionID string, at time.Time) error

	// Get returns the counters for actionID.
	// Returns nil if the action never fired.
	Get(ctx context.Context, actionID string) (*entity.ShortcutUsage, error)

	// Top returns the most fired actions, most used first.
	Top(ctx context.Context, limit int) ([]*entity.ShortcutUsage, error)

	// Reset clears every counter.
	Reset(ctx context.Context) error
}
