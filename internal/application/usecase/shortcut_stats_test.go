package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/keyroute/internal/application/port/mocks"
	"github.com/bnema/keyroute/internal/application/usecase"
	"github.com/bnema/keyroute/internal/domain/entity"
	repomocks "github.com/bnema/keyroute/internal/domain/repository/mocks"
)

func TestShortcutStatsUseCase_Execute(t *testing.T) {
	last := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	t.Run("returns top usage with titles", func(t *testing.T) {
		// Arrange
		repo := repomocks.NewMockShortcutUsageRepository(t)
		repo.EXPECT().Top(mock.Anything, 5).Return([]*entity.ShortcutUsage{
			{ActionID: "quick-open.show", Count: 7, LastFiredAt: last},
			{ActionID: "gone.action", Count: 2, LastFiredAt: last},
		}, nil)
		titles := portmocks.NewMockActionTitles(t)
		titles.EXPECT().ActionTitle("quick-open.show").Return("Quick open", true)
		titles.EXPECT().ActionTitle("gone.action").Return("", false)

		uc := usecase.NewShortcutStatsUseCase(repo, titles)

		// Act
		out, err := uc.Execute(context.Background(), usecase.ShortcutStatsInput{Limit: 5})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []usecase.ShortcutStat{
			{ActionID: "quick-open.show", Title: "Quick open", Count: 7, LastFiredAt: last},
			{ActionID: "gone.action", Title: "gone.action", Count: 2, LastFiredAt: last},
		}, out.Stats)
	})

	t.Run("applies the default limit", func(t *testing.T) {
		repo := repomocks.NewMockShortcutUsageRepository(t)
		repo.EXPECT().Top(mock.Anything, usecase.DefaultStatsLimit).Return(nil, nil)

		out, err := usecase.NewShortcutStatsUseCase(repo, nil).Execute(context.Background(), usecase.ShortcutStatsInput{})

		require.NoError(t, err)
		assert.Empty(t, out.Stats)
	})

	t.Run("wraps repository errors", func(t *testing.T) {
		repo := repomocks.NewMockShortcutUsageRepository(t)
		repo.EXPECT().Top(mock.Anything, mock.Anything).Return(nil, errors.New("disk I/O error"))

		_, err := usecase.NewShortcutStatsUseCase(repo, nil).Execute(context.Background(), usecase.ShortcutStatsInput{Limit: 3})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk I/O error")
	})

	t.Run("returns error when repository is nil", func(t *testing.T) {
		_, err := usecase.NewShortcutStatsUseCase(nil, nil).Execute(context.Background(), usecase.ShortcutStatsInput{})
		assert.EqualError(t, err, "shortcut usage repository is nil")
	})
}

func TestShortcutStatsUseCase_Reset(t *testing.T) {
	repo := repomocks.NewMockShortcutUsageRepository(t)
	repo.EXPECT().Reset(mock.Anything).Return(nil).Once()

	require.NoError(t, usecase.NewShortcutStatsUseCase(repo, nil).Reset(context.Background()))
}
