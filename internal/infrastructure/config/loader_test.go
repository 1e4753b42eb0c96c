package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keyroute/internal/domain/shortcut"
)

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.True(t, mgr.viper.GetBool("telemetry.enabled"))
	assert.Equal(t, 10, mgr.viper.GetInt("logging.max_size_mb"))
}

func TestManager_LoadCreatesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	mgr, err := NewManager(path)
	require.NoError(t, err)

	require.NoError(t, mgr.Load())

	assert.True(t, mgr.Created())
	assert.FileExists(t, path)
	cfg := mgr.Get()
	assert.Equal(t, DefaultBindings(), cfg.Bindings)
	assert.Len(t, cfg.Actions, len(DefaultActions()))
	assert.NotEmpty(t, cfg.Database.Path)
	assert.Equal(t, path, mgr.GetConfigFile())
}

func TestManager_LoadExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `platform = 'Mac'

[logging]
level = 'debug'

[database]
path = '/tmp/usage.sqlite'

[[bindings]]
action = 'find'
shortcut = 'CtrlOrMeta+F'

[[bindings]]
action = 'find'
shortcut = 'F3'
platform = 'windows, linux'

[[actions]]
id = 'find'
title = 'Find'
handled = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.False(t, mgr.Created())
	assert.Equal(t, "mac", cfg.Platform)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "/tmp/usage.sqlite", cfg.Database.Path)
	assert.Equal(t, []shortcut.Binding{
		{ActionID: "find", Shortcut: "CtrlOrMeta+F"},
		{ActionID: "find", Shortcut: "F3", Platform: "windows,linux"},
	}, cfg.Bindings)
	require.Len(t, cfg.Actions, 1)
	assert.True(t, cfg.Actions[0].Handled)
}

func TestManager_EnvOverride(t *testing.T) {
	t.Setenv("KEYROUTE_LOG_LEVEL", "warn")
	t.Setenv("KEYROUTE_PLATFORM", "windows")
	path := filepath.Join(t.TempDir(), "config.toml")

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "windows", cfg.Platform)
}

func TestManager_LoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `platform = 'beos'

[[bindings]]
action = ''
shortcut = 'Ctrl+K'
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	mgr, err := NewManager(path)
	require.NoError(t, err)
	err = mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "platform must be one of")
	assert.Contains(t, err.Error(), "bindings[0].action is required")
}

func TestManager_LoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[bindings]\naction = "), 0o644))

	mgr, err := NewManager(path)
	require.NoError(t, err)
	err = mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestManager_SaveReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Bindings = append(cfg.Bindings, shortcut.Binding{ActionID: "find", Shortcut: "Ctrl+F"})
	require.NoError(t, mgr.Save(cfg))

	assert.Contains(t, mgr.Get().Bindings, shortcut.Binding{ActionID: "find", Shortcut: "Ctrl+F"})
	assert.Error(t, mgr.Save(nil))
}

func TestManager_GetReturnsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Bindings[0].ActionID = "mutated"

	assert.NotEqual(t, "mutated", mgr.Get().Bindings[0].ActionID)
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Platform = " Linux "
	cfg.Logging.Format = ""
	cfg.Bindings = []shortcut.Binding{{ActionID: " a ", Shortcut: "F1", Platform: "Windows, Mac"}}

	normalizeConfig(cfg)

	assert.Equal(t, "linux", cfg.Platform)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "a", cfg.Bindings[0].ActionID)
	assert.Equal(t, "windows,mac", cfg.Bindings[0].Platform)
}
