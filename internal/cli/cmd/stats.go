package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/keyroute/internal/application/usecase"
	"github.com/bnema/keyroute/internal/cli/styles"
)

var (
	statsLimit int
	statsReset bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the most used shortcuts",
	Long: `Show the actions fired most often through a shortcut, as counted in the
local usage database. Counting is controlled by telemetry.enabled.

Examples:
  keyroute stats             # Top 10
  keyroute stats --limit 3
  keyroute stats --reset     # Forget all counts`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVarP(&statsLimit, "limit", "n", usecase.DefaultStatsLimit, "number of actions to show")
	statsCmd.Flags().BoolVar(&statsReset, "reset", false, "delete all usage counts")
}

func runStats(cmd *cobra.Command, _ []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	if statsReset {
		if err := app.ShortcutStatsUC.Reset(app.Ctx()); err != nil {
			return fmt.Errorf("reset usage: %w", err)
		}
		fmt.Fprintf(w, "\n  %s %s\n\n",
			app.Theme.SuccessStyle.Render(styles.IconCheck),
			app.Theme.Normal.Render("Usage counts cleared"))
		return nil
	}

	out, err := app.ShortcutStatsUC.Execute(app.Ctx(), usecase.ShortcutStatsInput{Limit: statsLimit})
	if err != nil {
		return fmt.Errorf("load usage: %w", err)
	}

	if !app.Recorder.Enabled() {
		fmt.Fprintf(w, "  %s %s\n",
			app.Theme.WarningStyle.Render(styles.IconWarning),
			app.Theme.Subtle.Render("telemetry is disabled; counts are not updated"))
	}
	if len(out.Stats) == 0 {
		fmt.Fprintln(w, app.Theme.Subtle.Render("No shortcut fired yet."))
		return nil
	}

	rows := make([]table.Row, 0, len(out.Stats))
	for _, s := range out.Stats {
		rows = append(rows, styles.StatRow(s))
	}
	fmt.Fprintln(w, styles.RenderTable(app.Theme, styles.StatsTableColumns(), rows))
	return nil
}
