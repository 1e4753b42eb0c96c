package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/keyroute/internal/application/port"
	"github.com/bnema/keyroute/internal/application/usecase"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	// Apply theme styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// BindingsTableColumns returns columns for the bindings listing.
func BindingsTableColumns() []table.Column {
	return []table.Column{
		{Title: "Action", Width: 24},
		{Title: "Title", Width: 26},
		{Title: "Shortcuts", Width: 36},
	}
}

// StatsTableColumns returns columns for the usage stats table.
func StatsTableColumns() []table.Column {
	return []table.Column{
		{Title: "Action", Width: 24},
		{Title: "Title", Width: 26},
		{Title: "Fired", Width: 8},
		{Title: "Last", Width: 12},
	}
}

// BindingRow converts a binding entry to a table row.
func BindingRow(e port.BindingEntry) table.Row {
	return table.Row{e.ActionID, e.Title, strings.Join(e.Shortcuts, "  ")}
}

// StatRow converts a usage stat to a table row.
func StatRow(s usecase.ShortcutStat) table.Row {
	return table.Row{s.ActionID, s.Title, formatCount(s.Count), RelativeTime(s.LastFiredAt)}
}

// RenderTable renders a static table for non-interactive output.
func RenderTable(theme *Theme, columns []table.Column, rows []table.Row) string {
	t := NewStyledTable(theme, columns, rows, tableWidth(columns), len(rows)+1)
	t.Blur()
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Cell = s.Cell.Foreground(theme.Text)
	s.Selected = s.Cell
	t.SetStyles(s)
	return t.View()
}

func tableWidth(columns []table.Column) int {
	w := 0
	for _, c := range columns {
		w += c.Width + 2
	}
	return w
}

// formatCount formats a counter for display.
func formatCount(n int64) string {
	switch {
	case n >= 1000000:
		return formatFloat(float64(n)/1000000) + "M"
	case n >= 1000:
		return formatFloat(float64(n)/1000) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}

// formatFloat formats a float with one decimal.
func formatFloat(f float64) string {
	i := int64(f * 10)
	whole, dec := i/10, i%10
	if dec == 0 {
		return strconv.FormatInt(whole, 10)
	}
	return strconv.FormatInt(whole, 10) + "." + strconv.FormatInt(dec, 10)
}
