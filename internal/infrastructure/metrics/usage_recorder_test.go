package metrics

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/keyroute/internal/domain/repository/mocks"
	"github.com/bnema/keyroute/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUsageRecorder_RecordsIncrement(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

	repo := mocks.NewMockShortcutUsageRepository(t)
	repo.EXPECT().Increment(mock.Anything, "console.clear", fixed).Return(nil).Once()

	rec := NewUsageRecorder(repo, true)
	rec.now = func() time.Time { return fixed }

	rec.KeyboardShortcutFired(ctx, "console.clear")
	assert.True(t, rec.Enabled())
}

func TestUsageRecorder_Disabled(t *testing.T) {
	repo := mocks.NewMockShortcutUsageRepository(t)

	rec := NewUsageRecorder(repo, false)
	rec.KeyboardShortcutFired(context.Background(), "console.clear")

	assert.False(t, rec.Enabled())
	repo.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsageRecorder_NilRepoIsDisabled(t *testing.T) {
	rec := NewUsageRecorder(nil, true)
	assert.False(t, rec.Enabled())
	assert.NotPanics(t, func() {
		rec.KeyboardShortcutFired(context.Background(), "console.clear")
	})
}

func TestUsageRecorder_LogsStorageError(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf
	ctx := logging.WithContext(context.Background(), logging.New(cfg))

	repo := mocks.NewMockShortcutUsageRepository(t)
	repo.EXPECT().Increment(mock.Anything, "main.reload", mock.Anything).
		Return(errors.New("database is locked")).Once()

	NewUsageRecorder(repo, true).KeyboardShortcutFired(ctx, "main.reload")

	assert.Contains(t, buf.String(), "failed to record shortcut usage")
	assert.Contains(t, buf.String(), "database is locked")
}
