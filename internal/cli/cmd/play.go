package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/keyroute/internal/cli"
	"github.com/bnema/keyroute/internal/cli/model"
	"github.com/bnema/keyroute/internal/logging"
)

var playNoWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Press keys against the live bindings",
	Long: `Open an interactive playground that routes every key you press through
the shortcut registry and shows the outcome.

Tab focuses a text field so you can see which keys reach it and which
are taken by shortcuts. Ctrl+T cycles the "panel" context flag, Esc
closes a dialog opened by an action. Bindings added to the config file
while the playground runs are picked up immediately.

Logs are written to the log file, not the terminal.`,
	Annotations: ownsTerminal,
	RunE:        runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playNoWatch, "no-watch", false, "do not reload bindings when the config file changes")
}

func runPlay(_ *cobra.Command, _ []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(logging.WithComponent(app.Ctx(), "playground"))
	defer cancel()

	if !playNoWatch {
		if err := app.FollowConfig(ctx); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("config watch unavailable")
		}
	}

	m := model.NewPlaygroundModel(model.PlaygroundDeps{
		Ctx:      ctx,
		Registry: app.Registry,
		Focus:    app.Focus,
		Dialogs:  app.Dialogs,
		Contexts: app.Contexts,
		Theme:    app.Theme,
		Panels:   cli.Panels,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	app.SetNotifier(func(actionID, message string) {
		p.Send(model.ActionNoticeMsg{ActionID: actionID, Message: message})
	})
	defer app.SetNotifier(nil)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run playground: %w", err)
	}
	return nil
}
