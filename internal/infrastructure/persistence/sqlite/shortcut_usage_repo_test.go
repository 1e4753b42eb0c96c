package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/keyroute/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/keyroute/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usageTestCtx() context.Context {
	cfg := logging.DefaultConfig()
	cfg.Level = zerolog.DebugLevel
	return logging.WithContext(context.Background(), logging.New(cfg))
}

func openTestDB(t *testing.T, ctx context.Context) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "keyroute.sqlite")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	return db
}

func TestShortcutUsageRepository_IncrementAndGet(t *testing.T) {
	ctx := usageTestCtx()
	repo := sqlite.NewShortcutUsageRepository(openTestDB(t, ctx))

	t0 := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Minute)

	require.NoError(t, repo.Increment(ctx, "console.clear", t0))
	require.NoError(t, repo.Increment(ctx, "console.clear", t1))

	usage, err := repo.Get(ctx, "console.clear")
	require.NoError(t, err)
	require.NotNil(t, usage)
	assert.Equal(t, "console.clear", usage.ActionID)
	assert.Equal(t, int64(2), usage.Count)
	assert.True(t, usage.FirstFiredAt.Equal(t0))
	assert.True(t, usage.LastFiredAt.Equal(t1))
}

func TestShortcutUsageRepository_LastFiredNeverMovesBack(t *testing.T) {
	ctx := usageTestCtx()
	repo := sqlite.NewShortcutUsageRepository(openTestDB(t, ctx))

	late := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Increment(ctx, "main.reload", late))
	require.NoError(t, repo.Increment(ctx, "main.reload", late.Add(-time.Hour)))

	usage, err := repo.Get(ctx, "main.reload")
	require.NoError(t, err)
	assert.True(t, usage.LastFiredAt.Equal(late))
}

func TestShortcutUsageRepository_GetUnknown(t *testing.T) {
	ctx := usageTestCtx()
	repo := sqlite.NewShortcutUsageRepository(openTestDB(t, ctx))

	usage, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, usage)
}

func TestShortcutUsageRepository_Top(t *testing.T) {
	ctx := usageTestCtx()
	repo := sqlite.NewShortcutUsageRepository(openTestDB(t, ctx))

	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	fire := func(id string, n int) {
		for i := 0; i < n; i++ {
			require.NoError(t, repo.Increment(ctx, id, now))
		}
	}
	fire("console.clear", 1)
	fire("quick-open.show", 3)
	fire("debugger.pause", 2)

	top, err := repo.Top(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "quick-open.show", top[0].ActionID)
	assert.Equal(t, "debugger.pause", top[1].ActionID)

	none, err := repo.Top(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestShortcutUsageRepository_Reset(t *testing.T) {
	ctx := usageTestCtx()
	repo := sqlite.NewShortcutUsageRepository(openTestDB(t, ctx))

	require.NoError(t, repo.Increment(ctx, "console.clear", time.Now()))
	require.NoError(t, repo.Reset(ctx))

	top, err := repo.Top(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestGetMigrationStatus(t *testing.T) {
	ctx := usageTestCtx()
	db := openTestDB(t, ctx)

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := usageTestCtx()
	db := openTestDB(t, ctx)

	require.NoError(t, sqlite.RunMigrations(ctx, db))

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}
