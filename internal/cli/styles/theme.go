// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/keyroute/internal/infrastructure/config"
)

// Colors that the palette does not configure.
const (
	errorColor   = lipgloss.Color("#ef4444")
	warningColor = lipgloss.Color("#f59e0b")
)

// Theme holds the palette colors and the styles the commands render with.
type Theme struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Error          lipgloss.Color
	Warning        lipgloss.Color
	Success        lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Badges tag dispatch outcomes and playground state.
	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style
	BadgeError lipgloss.Style

	// KeyCap renders a shortcut name like a keyboard key.
	KeyCap lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewTheme creates a Theme from the configured palette. A nil config or a
// palette without a background uses the default palette.
func NewTheme(cfg *config.Config) *Theme {
	p := config.DefaultPalette()
	if cfg != nil && cfg.Appearance.Palette.Background != "" {
		p = cfg.Appearance.Palette
	}
	return NewThemeFromPalette(p)
}

// NewThemeFromPalette creates a Theme from a ColorPalette.
func NewThemeFromPalette(p config.ColorPalette) *Theme {
	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
		Error:          errorColor,
		Warning:        warningColor,
		Success:        lipgloss.Color(p.Accent),
	}
	t.buildStyles()
	return t
}

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func badge(fgc, bgc lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(fgc).Background(bgc).Padding(0, 1)
}

func (t *Theme) inputBox(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

func (t *Theme) buildStyles() {
	t.Title = fg(t.Text).Bold(true)
	t.Normal = fg(t.Text)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.Error)
	t.WarningStyle = fg(t.Warning)
	t.SuccessStyle = fg(t.Success)

	t.Badge = badge(t.Background, t.Accent)
	t.BadgeMuted = badge(t.Text, t.SurfaceVariant)
	t.BadgeError = badge(t.Background, t.Error)
	t.KeyCap = badge(t.Text, t.SurfaceVariant).Bold(true)

	// The playground input border lights up while it holds focus.
	t.Input = t.inputBox(t.Border)
	t.InputFocused = t.inputBox(t.Accent)

	t.HelpKey = fg(t.Accent)
	t.HelpDesc = fg(t.Muted)
}
