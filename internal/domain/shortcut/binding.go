package shortcut

import "errors"

// ErrUnparseable reports a shortcut string the codec could not parse.
var ErrUnparseable = errors.New("unparseable shortcut")

// Binding is one declarative binding record. Shortcut holds one or more
// whitespace-separated shortcut strings; Platform is empty (any platform)
// or a comma-separated allow-list of platform tags.
type Binding struct {
	ActionID string `mapstructure:"action" toml:"action" json:"action"`
	Shortcut string `mapstructure:"shortcut" toml:"shortcut" json:"shortcut"`
	Platform string `mapstructure:"platform" toml:"platform,omitempty" json:"platform,omitempty"`
}

// LoadReport summarizes a Store.Load call.
type LoadReport struct {
	Registered      int
	SkippedPlatform int
	Unparseable     []string
}
