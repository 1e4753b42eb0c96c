package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/keyroute/internal/application/usecase"
	"github.com/bnema/keyroute/internal/cli/styles"
)

var (
	resolveEditing bool
	resolveDialog  string
	resolveFlags   map[string]string
	resolveJSON    bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <shortcut>",
	Short: "Dispatch a shortcut and report what happened",
	Long: `Parse a shortcut, press it once against the configured bindings and
report the outcome: which action fired, whether the key was forwarded to
the host, blocked by a dialog, or consumed without any action accepting it.

Flag values true/false and integers are typed; anything else is a string.

Examples:
  keyroute resolve F8
  keyroute resolve "CtrlOrMeta+S" --flag panel=console
  keyroute resolve H --editing          # as if a text field had focus
  keyroute resolve Ctrl+S --dialog settings`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolVar(&resolveEditing, "editing", false, "focus a text input while dispatching")
	resolveCmd.Flags().StringVar(&resolveDialog, "dialog", "", "open a modal dialog with this name while dispatching")
	resolveCmd.Flags().StringToStringVar(&resolveFlags, "flag", nil, "set a UI context flag (key=value, repeatable)")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "print JSON instead of styled output")
}

type resolveReport struct {
	Shortcut string   `json:"shortcut"`
	Bound    []string `json:"bound"`
	Outcome  string   `json:"outcome"`
	Consumed bool     `json:"consumed"`
	Error    string   `json:"error,omitempty"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	out, err := app.ResolveShortcutUC.Execute(app.Ctx(), usecase.ResolveShortcutInput{
		Shortcut: args[0],
		Editing:  resolveEditing,
		Dialog:   resolveDialog,
		Flags:    parseContextFlags(resolveFlags),
	})
	if err != nil {
		return err
	}

	report := resolveReport{
		Shortcut: out.Descriptor.Name,
		Bound:    out.Bound,
		Outcome:  out.Outcome,
		Consumed: out.Consumed,
	}
	if out.Err != nil {
		report.Error = out.Err.Error()
	}

	w := cmd.OutOrStdout()
	if resolveJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	renderResolve(w, app.Theme, report)
	return nil
}

func renderResolve(w io.Writer, theme *styles.Theme, r resolveReport) {
	bound := theme.Subtle.Render("nothing bound")
	if len(r.Bound) > 0 {
		bound = theme.Subtle.Render(strings.Join(r.Bound, ", "))
	}
	fmt.Fprintf(w, "\n  %s  %s\n", theme.KeyCaps([]string{r.Shortcut}), bound)
	fmt.Fprintf(w, "  %s %s\n", styles.IconArrow, theme.OutcomeBadge(r.Outcome, r.Consumed, r.Error != ""))
	if r.Error != "" {
		fmt.Fprintf(w, "  %s\n", theme.ErrorStyle.Render(r.Error))
	}
	fmt.Fprintln(w)
}

// parseContextFlags types flag values: booleans and integers are converted,
// everything else stays a string.
func parseContextFlags(raw map[string]string) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	flags := make(map[string]any, len(raw))
	for k, v := range raw {
		flags[k] = parseFlagValue(v)
	}
	return flags
}

func parseFlagValue(v string) any {
	switch strings.ToLower(v) {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n
	}
	return v
}
