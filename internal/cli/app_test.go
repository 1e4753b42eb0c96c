package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keyroute/internal/application/usecase"
	"github.com/bnema/keyroute/internal/domain/keyboard"
)

func newIsolatedApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", dir+"/config")
	t.Setenv("XDG_DATA_HOME", dir+"/data")
	t.Setenv("XDG_STATE_HOME", dir+"/state")
	t.Setenv("KEYROUTE_PLATFORM", "linux")
	t.Setenv("KEYROUTE_LOG_LEVEL", "error")

	app, err := NewApp(AppOptions{LogToFile: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestNewApp_WiresDefaults(t *testing.T) {
	app := newIsolatedApp(t)

	assert.True(t, app.Manager.Created())
	assert.Equal(t, keyboard.PlatformLinux, app.Registry.Platform())
	assert.NotEmpty(t, app.LogPath())
	assert.FileExists(t, app.LogPath())

	out, err := app.ListBindingsUC.Execute(app.Ctx(), usecase.ListBindingsInput{Filter: "console"})
	require.NoError(t, err)
	require.Len(t, out.Entries, 1)
	assert.Equal(t, "console.clear", out.Entries[0].ActionID)
	assert.Equal(t, []string{"Ctrl+L"}, out.Entries[0].Shortcuts)
}

func TestNewApp_ResolveRecordsUsage(t *testing.T) {
	app := newIsolatedApp(t)
	var notes []notice
	app.SetNotifier(func(actionID, message string) {
		notes = append(notes, notice{actionID, message})
	})

	out, err := app.ResolveShortcutUC.Execute(app.Ctx(), usecase.ResolveShortcutInput{Shortcut: "F8"})
	require.NoError(t, err)
	assert.Equal(t, "fired debugger.pause", out.Outcome)
	assert.Equal(t, []string{"debugger.pause", "debugger.resume"}, out.Bound)
	assert.Equal(t, []notice{{"debugger.pause", "script paused"}}, notes)

	out, err = app.ResolveShortcutUC.Execute(app.Ctx(), usecase.ResolveShortcutInput{Shortcut: "F8"})
	require.NoError(t, err)
	assert.Equal(t, "fired debugger.resume", out.Outcome)

	stats, err := app.ShortcutStatsUC.Execute(app.Ctx(), usecase.ShortcutStatsInput{})
	require.NoError(t, err)
	require.Len(t, stats.Stats, 2)
	for _, s := range stats.Stats {
		assert.EqualValues(t, 1, s.Count)
	}
}

func TestNewApp_ResolveInsideDialog(t *testing.T) {
	app := newIsolatedApp(t)

	out, err := app.ResolveShortcutUC.Execute(app.Ctx(), usecase.ResolveShortcutInput{
		Shortcut: "Ctrl+S",
		Dialog:   "settings",
	})
	require.NoError(t, err)
	assert.Equal(t, "blocked by dialog", out.Outcome)
	assert.True(t, out.Consumed)
	assert.False(t, app.Dialogs.HasDialog())
}

func TestNewApp_ResolveFailingAction(t *testing.T) {
	app := newIsolatedApp(t)

	out, err := app.ResolveShortcutUC.Execute(app.Ctx(), usecase.ResolveShortcutInput{Shortcut: "Shift+F5"})
	require.NoError(t, err)
	assert.Equal(t, "failed", out.Outcome)
	require.Error(t, out.Err)
	assert.Contains(t, out.Err.Error(), "cache is locked")
}

func TestApp_SchemaVersion(t *testing.T) {
	app := newIsolatedApp(t)

	version, err := app.SchemaVersion(app.Ctx())
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	require.NoError(t, app.Close())
	_, err = app.SchemaVersion(app.Ctx())
	assert.Error(t, err)
}
