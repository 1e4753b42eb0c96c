// Package model holds the Bubble Tea models of the CLI.
package model

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/keyroute/internal/cli/styles"
	"github.com/bnema/keyroute/internal/infrastructure/terminal"
	"github.com/bnema/keyroute/internal/logging"
	"github.com/bnema/keyroute/internal/ui/dialog"
	"github.com/bnema/keyroute/internal/ui/focus"
	"github.com/bnema/keyroute/internal/ui/input"
	"github.com/bnema/keyroute/internal/ui/state"
)

const (
	maxLogLines = 200
	// scratchField is the focus id of the playground text input.
	scratchField = focus.Field("playground-input")
)

// PlaygroundDeps are the live components the playground drives.
type PlaygroundDeps struct {
	Ctx      context.Context
	Registry *input.ShortcutRegistry
	Focus    *focus.Provider
	Dialogs  *dialog.Stack
	Contexts *state.ContextStore
	Theme    *styles.Theme
	// Panels are cycled into the "panel" context flag.
	Panels []string
}

// ActionNoticeMsg carries a message printed by an action.
type ActionNoticeMsg struct {
	ActionID string
	Message  string
}

// dispatchDoneMsg is sent when the candidates of a key have run.
type dispatchDoneMsg struct {
	key     string
	outcome input.Outcome
	err     error
}

type logKind int

const (
	logInfo logKind = iota
	logFired
	logMuted
	logError
	logNotice
)

type logLine struct {
	kind logKind
	text string
}

// PlaygroundModel lets the user press keys against the live shortcut
// registry and shows how each one was routed.
type PlaygroundModel struct {
	deps PlaygroundDeps
	keys styles.PlaygroundKeyMap

	input    textinput.Model
	help     help.Model
	editing  bool
	showHelp bool

	// busy is set while a Pending runs; keys pressed meanwhile wait in queue
	// so dispatches never overlap.
	busy  bool
	queue []tea.KeyMsg

	lines  []logLine
	width  int
	height int
}

// NewPlaygroundModel creates the playground.
func NewPlaygroundModel(deps PlaygroundDeps) PlaygroundModel {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	m := PlaygroundModel{
		deps:   deps,
		keys:   styles.DefaultPlaygroundKeyMap(),
		input:  styles.NewScratchInput(deps.Theme),
		help:   styles.NewStyledHelp(deps.Theme),
		width:  80,
		height: 24,
	}
	m.appendLine(logInfo, fmt.Sprintf("platform %s, %d bound actions. Press keys to dispatch them.",
		deps.Registry.Platform(), len(deps.Registry.BoundActions())))
	return m
}

// Init implements tea.Model.
func (m PlaygroundModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-12, 10)
		return m, nil

	case ActionNoticeMsg:
		m.appendLine(logNotice, fmt.Sprintf("%s %s: %s", styles.IconInfo, msg.ActionID, msg.Message))
		return m, nil

	case dispatchDoneMsg:
		m.busy = false
		m.logOutcome(msg.key, msg.outcome, msg.err)
		return m.drainQueue()

	case tea.KeyMsg:
		if cmd, handled := m.handleHostKey(msg); handled {
			return m, cmd
		}
		if m.busy {
			m.queue = append(m.queue, msg)
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleHostKey runs the keys the playground reserves for itself.
func (m *PlaygroundModel) handleHostKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true

	case key.Matches(msg, m.keys.ToggleEdit):
		m.editing = !m.editing
		if m.editing {
			m.deps.Focus.SetFocusedInput(scratchField)
			return m.input.Focus(), true
		}
		m.deps.Focus.SetFocusedInput(nil)
		m.input.Blur()
		return nil, true

	case key.Matches(msg, m.keys.CyclePanel) && len(m.deps.Panels) > 0:
		next := m.deps.Panels[(slices.Index(m.deps.Panels, m.currentPanel())+1)%len(m.deps.Panels)]
		m.deps.Contexts.Set("panel", next)
		m.appendLine(logInfo, "panel "+next)
		return nil, true

	case key.Matches(msg, m.keys.CloseDialog) && m.deps.Dialogs.HasDialog():
		if name, ok := m.deps.Dialogs.CloseTop(); ok {
			m.appendLine(logInfo, "closed dialog "+name)
		}
		return nil, true

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return nil, true
	}
	return nil, false
}

// handleKey settles msg synchronously when possible and otherwise returns a
// command that runs the candidates off the UI goroutine.
func (m PlaygroundModel) handleKey(msg tea.KeyMsg) (PlaygroundModel, tea.Cmd) {
	ev := terminal.ToEvent(msg)
	if ev == nil {
		return m.forwardToInput(msg)
	}

	reg := m.deps.Registry
	k := reg.Codec().FromEvent(ev)
	name := reg.Codec().MakeDescriptor(k.Code(), k.Modifiers()).Name

	pending, outcome := reg.Prepare(m.deps.Ctx, k, ev.Key, ev)
	if pending == nil {
		if outcome.Consumed() {
			m.logOutcome(name, outcome, nil)
			return m, nil
		}
		if m.editing {
			return m.forwardToInput(msg)
		}
		m.logOutcome(name, outcome, nil)
		return m, nil
	}

	m.busy = true
	ctx := logging.WithShortcut(m.deps.Ctx, name)
	return m, func() tea.Msg {
		outcome, err := pending.Run(ctx)
		return dispatchDoneMsg{key: name, outcome: outcome, err: err}
	}
}

// drainQueue dispatches queued keys until one needs to run asynchronously.
func (m PlaygroundModel) drainQueue() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for len(m.queue) > 0 && !m.busy {
		next := m.queue[0]
		m.queue = m.queue[1:]
		var cmd tea.Cmd
		m, cmd = m.handleKey(next)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m PlaygroundModel) forwardToInput(msg tea.KeyMsg) (PlaygroundModel, tea.Cmd) {
	if !m.editing {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *PlaygroundModel) logOutcome(name string, outcome input.Outcome, err error) {
	if err != nil {
		m.appendLine(logError, fmt.Sprintf("%s  %s", name, err))
		return
	}
	switch outcome.(type) {
	case input.Fired:
		m.appendLine(logFired, fmt.Sprintf("%s  %s", name, outcome))
	case input.ForwardedShortcut:
		m.appendLine(logMuted, fmt.Sprintf("%s  %s", name, outcome))
	default:
		m.appendLine(logInfo, fmt.Sprintf("%s  %s", name, outcome))
	}
}

func (m *PlaygroundModel) appendLine(kind logKind, text string) {
	m.lines = append(m.lines, logLine{kind: kind, text: text})
	if len(m.lines) > maxLogLines {
		m.lines = m.lines[len(m.lines)-maxLogLines:]
	}
}

// View implements tea.Model.
func (m PlaygroundModel) View() string {
	t := m.deps.Theme

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		t.Title.Render(styles.IconKeyboard+" keyroute playground"),
		"  ",
		m.statusBadges(),
	)

	inputBox := t.InputBox(m.input.View(), m.editing)
	helpView := m.help.View(m.keys)

	used := lipgloss.Height(header) + lipgloss.Height(inputBox) + lipgloss.Height(helpView) + 2
	logView := m.renderLog(max(m.height-used, 3))

	return lipgloss.JoinVertical(lipgloss.Left, header, "", logView, inputBox, helpView)
}

func (m PlaygroundModel) statusBadges() string {
	t := m.deps.Theme
	badges := []string{t.MutedBadge(string(m.deps.Registry.Platform()))}
	if panel := m.currentPanel(); panel != "" {
		badges = append(badges, t.Badge.Render("panel "+panel))
	}
	if top := m.deps.Dialogs.Top(); top != "" {
		badges = append(badges, t.BadgeError.Render(styles.IconLock+" "+top))
	}
	if m.editing {
		badges = append(badges, t.Badge.Render(styles.IconPencil+" editing"))
	}
	if m.busy {
		badges = append(badges, t.MutedBadge(fmt.Sprintf("running, %d queued", len(m.queue))))
	}
	return strings.Join(badges, " ")
}

func (m PlaygroundModel) currentPanel() string {
	v, _ := m.deps.Contexts.CurrentContext().Value("panel")
	panel, _ := v.(string)
	return panel
}

func (m PlaygroundModel) renderLog(height int) string {
	t := m.deps.Theme
	lines := m.lines
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}

	out := make([]string, 0, height)
	for _, l := range lines {
		style := t.Normal
		switch l.kind {
		case logFired, logNotice:
			style = t.SuccessStyle
		case logMuted:
			style = t.Subtle
		case logError:
			style = t.ErrorStyle
		}
		out = append(out, " "+style.Render(l.text))
	}
	for len(out) < height {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}
