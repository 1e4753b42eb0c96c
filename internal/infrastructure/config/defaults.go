package config

import (
	"github.com/bnema/keyroute/internal/domain/shortcut"
)

const (
	defaultLogMaxSizeMB = 10
)

// DefaultConfig returns the default configuration: a DevTools-like binding
// set and the demo actions it refers to.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: false,
			MaxSizeMB:     defaultLogMaxSizeMB,
		},
		Telemetry: TelemetryConfig{
			Enabled: true,
		},
		Appearance: AppearanceConfig{
			Palette: DefaultPalette(),
		},
		Bindings: DefaultBindings(),
		Actions:  DefaultActions(),
	}
}

// DefaultPalette returns the dark CLI palette.
func DefaultPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
	}
}

// DefaultBindings returns the shipped shortcut bindings.
func DefaultBindings() []shortcut.Binding {
	return []shortcut.Binding{
		{ActionID: "debugger.pause", Shortcut: "F8 CtrlOrMeta+\\"},
		{ActionID: "debugger.resume", Shortcut: "F8 CtrlOrMeta+\\"},
		{ActionID: "debugger.step-over", Shortcut: "F10 CtrlOrMeta+'"},
		{ActionID: "debugger.step-into", Shortcut: "F11 CtrlOrMeta+;"},
		{ActionID: "debugger.step-out", Shortcut: "Shift+F11 CtrlOrMeta+Shift+;"},
		{ActionID: "sources.save", Shortcut: "CtrlOrMeta+S"},
		{ActionID: "sources.search", Shortcut: "Meta+Alt+F", Platform: "mac"},
		{ActionID: "sources.search", Shortcut: "Ctrl+Shift+F", Platform: "windows,linux"},
		{ActionID: "sources.jump-to-file", Shortcut: "CtrlOrMeta+P"},
		{ActionID: "quick-open.show", Shortcut: "CtrlOrMeta+P CtrlOrMeta+O"},
		{ActionID: "console.clear", Shortcut: "Meta+K", Platform: "mac"},
		{ActionID: "console.clear", Shortcut: "Ctrl+L", Platform: "windows,linux"},
		{ActionID: "elements.hide-element", Shortcut: "H"},
		{ActionID: "edit.undo", Shortcut: "CtrlOrMeta+Z"},
		{ActionID: "edit.redo", Shortcut: "Meta+Shift+Z", Platform: "mac"},
		{ActionID: "edit.redo", Shortcut: "Ctrl+Y Ctrl+Shift+Z", Platform: "windows,linux"},
		{ActionID: "main.reload", Shortcut: "F5 CtrlOrMeta+R"},
		{ActionID: "main.hard-reload", Shortcut: "Shift+F5 CtrlOrMeta+F5 CtrlOrMeta+Shift+R"},
		{ActionID: "settings.show", Shortcut: "F1 Shift+?"},
	}
}

// DefaultActions returns the shipped demo action catalog.
func DefaultActions() []ActionConfig {
	return []ActionConfig{
		{
			ID: "debugger.pause", Title: "Pause script execution",
			When: "!debugger_paused", Message: "script paused", Handled: true,
			Set: map[string]any{"debugger_paused": true},
		},
		{
			ID: "debugger.resume", Title: "Resume script execution",
			When: "debugger_paused", Message: "script resumed", Handled: true,
			Set: map[string]any{"debugger_paused": false},
		},
		{ID: "debugger.step-over", Title: "Step over", When: "debugger_paused", Message: "stepped over", Handled: true},
		{ID: "debugger.step-into", Title: "Step into", When: "debugger_paused", Message: "stepped into", Handled: true},
		{ID: "debugger.step-out", Title: "Step out", When: "debugger_paused", Message: "stepped out", Handled: true},
		{ID: "sources.save", Title: "Save", When: "panel === 'sources'", Message: "file saved", Handled: true},
		{ID: "sources.search", Title: "Search all sources", Message: "search opened", Handled: true},
		{ID: "sources.jump-to-file", Title: "Jump to file", When: "panel === 'sources'", Message: "no file index yet", Handled: false},
		{ID: "quick-open.show", Title: "Open file", Message: "quick open", Dialog: "quick-open", DialogTimeoutMS: 3000, Handled: true},
		{ID: "console.clear", Title: "Clear console", When: "panel === 'console'", Message: "console cleared", Handled: true},
		{ID: "elements.hide-element", Title: "Hide element", When: "panel === 'elements'", Message: "element hidden", Handled: true},
		{ID: "edit.undo", Title: "Undo", Message: "undo", Handled: true},
		{ID: "edit.redo", Title: "Redo", Message: "redo", Handled: true},
		{ID: "main.reload", Title: "Reload page", Message: "page reloaded", Handled: true},
		{ID: "main.hard-reload", Title: "Hard reload page", Error: "cache is locked", Handled: false},
		{ID: "settings.show", Title: "Settings", Dialog: "settings", Handled: true},
	}
}
