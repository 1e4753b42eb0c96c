package config

import (
	"github.com/bnema/keyroute/internal/domain/shortcut"
)

// Config represents the complete configuration for keyroute.
type Config struct {
	// Platform overrides platform detection (mac, windows, linux). Empty means detect.
	Platform  string          `mapstructure:"platform" toml:"platform" json:"platform,omitempty"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging" json:"logging"`
	Database  DatabaseConfig  `mapstructure:"database" toml:"database" json:"database"`
	Telemetry TelemetryConfig `mapstructure:"telemetry" toml:"telemetry" json:"telemetry"`
	// Appearance styles the CLI output.
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	// Bindings maps shortcuts to action ids. A shortcut may hold several
	// whitespace-separated chords.
	Bindings []shortcut.Binding `mapstructure:"bindings" toml:"bindings" json:"bindings"`
	// Actions is the demo action catalog used by the CLI host.
	Actions []ActionConfig `mapstructure:"actions" toml:"actions" json:"actions"`
}

// LoggingConfig controls log level, format and the optional log file.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir,omitempty"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
}

// DatabaseConfig locates the usage database.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty"`
}

// TelemetryConfig toggles local shortcut usage counting.
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
}

// AppearanceConfig holds CLI colors.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" toml:"palette" json:"palette"`
}

// ColorPalette holds hex colors for the CLI theme.
type ColorPalette struct {
	Background     string `mapstructure:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" toml:"border" json:"border"`
}

// ActionConfig declares one action of the demo catalog.
type ActionConfig struct {
	ID    string `mapstructure:"id" toml:"id" json:"id"`
	Title string `mapstructure:"title" toml:"title" json:"title"`
	// When is a JavaScript boolean expression over the UI context flags.
	// Empty means always applicable.
	When string `mapstructure:"when" toml:"when,omitempty" json:"when,omitempty"`
	// Message is printed by the host when the action runs.
	Message string `mapstructure:"message" toml:"message,omitempty" json:"message,omitempty"`
	// Handled is what the action reports; false lets the next candidate try.
	Handled bool `mapstructure:"handled" toml:"handled" json:"handled"`
	// Error makes the action fail with this message.
	Error string `mapstructure:"error" toml:"error,omitempty" json:"error,omitempty"`
	// Dialog opens the named modal dialog.
	Dialog string `mapstructure:"dialog" toml:"dialog,omitempty" json:"dialog,omitempty"`
	// DialogTimeoutMS closes the dialog on its own after this many
	// milliseconds. Zero keeps it open until closed.
	DialogTimeoutMS int `mapstructure:"dialog_timeout_ms" toml:"dialog_timeout_ms,omitempty" json:"dialog_timeout_ms,omitempty" jsonschema:"minimum=0"`
	// Set updates UI context flags after the action runs.
	Set map[string]any `mapstructure:"set" toml:"set,inline,omitempty" json:"set,omitempty"`
}
