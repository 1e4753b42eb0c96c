package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/keyroute/internal/application/port"
	"github.com/bnema/keyroute/internal/domain/repository"
)

// DefaultStatsLimit is used when ShortcutStatsInput.Limit is not positive.
const DefaultStatsLimit = 10

// ShortcutStatsUseCase reports the most used shortcuts.
type ShortcutStatsUseCase struct {
	repo   repository.ShortcutUsageRepository
	titles port.ActionTitles
}

// NewShortcutStatsUseCase creates a new ShortcutStatsUseCase.
func NewShortcutStatsUseCase(repo repository.ShortcutUsageRepository, titles port.ActionTitles) *ShortcutStatsUseCase {
	return &ShortcutStatsUseCase{repo: repo, titles: titles}
}

// ShortcutStatsInput contains input parameters for the report.
type ShortcutStatsInput struct {
	Limit int
}

// ShortcutStat is one row of the report.
type ShortcutStat struct {
	ActionID    string    `json:"action"`
	Title       string    `json:"title"`
	Count       int64     `json:"count"`
	LastFiredAt time.Time `json:"last_fired_at"`
}

// ShortcutStatsOutput holds the rows, most used first.
type ShortcutStatsOutput struct {
	Stats []ShortcutStat
}

// Execute loads the report.
func (uc *ShortcutStatsUseCase) Execute(ctx context.Context, in ShortcutStatsInput) (*ShortcutStatsOutput, error) {
	if uc == nil || uc.repo == nil {
		return nil, fmt.Errorf("shortcut usage repository is nil")
	}

	limit := in.Limit
	if limit <= 0 {
		limit = DefaultStatsLimit
	}

	usage, err := uc.repo.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load shortcut usage: %w", err)
	}

	out := &ShortcutStatsOutput{Stats: make([]ShortcutStat, 0, len(usage))}
	for _, u := range usage {
		stat := ShortcutStat{
			ActionID:    u.ActionID,
			Title:       u.ActionID,
			Count:       u.Count,
			LastFiredAt: u.LastFiredAt,
		}
		if uc.titles != nil {
			if title, ok := uc.titles.ActionTitle(u.ActionID); ok {
				stat.Title = title
			}
		}
		out.Stats = append(out.Stats, stat)
	}
	return out, nil
}

// Reset clears every counter.
func (uc *ShortcutStatsUseCase) Reset(ctx context.Context) error {
	if uc == nil || uc.repo == nil {
		return fmt.Errorf("shortcut usage repository is nil")
	}
	return uc.repo.Reset(ctx)
}
