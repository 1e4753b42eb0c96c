package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/keyroute/internal/domain/entity"
	"github.com/bnema/keyroute/internal/domain/repository"
	"github.com/bnema/keyroute/internal/logging"
)

const (
	incrementUsageSQL = `
INSERT INTO shortcut_usage (action_id, fired_count, first_fired_at, last_fired_at)
VALUES (?, 1, ?, ?)
ON CONFLICT(action_id) DO UPDATE SET
    fired_count   = fired_count + 1,
    last_fired_at = MAX(last_fired_at, excluded.last_fired_at)`

	getUsageSQL = `
SELECT action_id, fired_count, first_fired_at, last_fired_at
FROM shortcut_usage
WHERE action_id = ?`

	topUsageSQL = `
SELECT action_id, fired_count, first_fired_at, last_fired_at
FROM shortcut_usage
ORDER BY fired_count DESC, last_fired_at DESC, action_id ASC
LIMIT ?`

	resetUsageSQL = `DELETE FROM shortcut_usage`
)

type shortcutUsageRepo struct {
	db *sql.DB
}

// NewShortcutUsageRepository creates a new SQLite-backed usage repository.
func NewShortcutUsageRepository(db *sql.DB) repository.ShortcutUsageRepository {
	return &shortcutUsageRepo{db: db}
}

func (r *shortcutUsageRepo) Increment(ctx context.Context, actionID string, at time.Time) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("action_id", actionID).Msg("incrementing shortcut usage")

	ms := at.UnixMilli()
	if _, err := r.db.ExecContext(ctx, incrementUsageSQL, actionID, ms, ms); err != nil {
		return fmt.Errorf("increment usage for %q: %w", actionID, err)
	}
	return nil
}

func (r *shortcutUsageRepo) Get(ctx context.Context, actionID string) (*entity.ShortcutUsage, error) {
	row := r.db.QueryRowContext(ctx, getUsageSQL, actionID)
	usage, err := scanUsage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usage for %q: %w", actionID, err)
	}
	return usage, nil
}

func (r *shortcutUsageRepo) Top(ctx context.Context, limit int) ([]*entity.ShortcutUsage, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, topUsageSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list top usage: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*entity.ShortcutUsage
	for rows.Next() {
		usage, err := scanUsage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usage row: %w", err)
		}
		out = append(out, usage)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate usage rows: %w", err)
	}
	return out, nil
}

func (r *shortcutUsageRepo) Reset(ctx context.Context) error {
	logging.FromContext(ctx).Info().Msg("resetting shortcut usage")
	_, err := r.db.ExecContext(ctx, resetUsageSQL)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUsage(s rowScanner) (*entity.ShortcutUsage, error) {
	var (
		u           entity.ShortcutUsage
		first, last int64
	)
	if err := s.Scan(&u.ActionID, &u.Count, &first, &last); err != nil {
		return nil, err
	}
	u.FirstFiredAt = time.UnixMilli(first).UTC()
	u.LastFiredAt = time.UnixMilli(last).UTC()
	return &u, nil
}
