package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/keyroute/internal/application/usecase"
	"github.com/bnema/keyroute/internal/cli/styles"
)

var (
	bindingsFilter string
	bindingsJSON   bool
)

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "List bound actions and their shortcuts",
	Long: `List every action bound in the config with the shortcuts that trigger it
on the current platform.

Examples:
  keyroute bindings                  # List everything
  keyroute bindings --filter debug   # Only debugger actions
  keyroute bindings --json           # Machine-readable output`,
	RunE: runBindings,
}

var globalKeysCmd = &cobra.Command{
	Use:   "global-keys",
	Short: "List keys that fire with no UI context",
	Long: `List the keys bound to at least one action whose when clause holds in an
empty UI context. These are the shortcuts a host should reserve globally.`,
	RunE: runGlobalKeys,
}

func init() {
	rootCmd.AddCommand(bindingsCmd)
	rootCmd.AddCommand(globalKeysCmd)
	bindingsCmd.Flags().StringVarP(&bindingsFilter, "filter", "f", "", "keep entries whose id, title or shortcut contains this text")
	bindingsCmd.Flags().BoolVar(&bindingsJSON, "json", false, "print JSON instead of a table")
}

func runBindings(cmd *cobra.Command, _ []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	out, err := app.ListBindingsUC.Execute(app.Ctx(), usecase.ListBindingsInput{Filter: bindingsFilter})
	if err != nil {
		return fmt.Errorf("list bindings: %w", err)
	}

	w := cmd.OutOrStdout()
	if bindingsJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out.Entries)
	}

	if len(out.Entries) == 0 {
		fmt.Fprintln(w, app.Theme.Subtle.Render("No bindings match."))
		return nil
	}

	rows := make([]table.Row, 0, len(out.Entries))
	for _, e := range out.Entries {
		rows = append(rows, styles.BindingRow(e))
	}
	fmt.Fprintln(w, styles.RenderTable(app.Theme, styles.BindingsTableColumns(), rows))
	return nil
}

func runGlobalKeys(cmd *cobra.Command, _ []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	keys := app.Registry.GlobalShortcutKeys()
	w := cmd.OutOrStdout()
	if len(keys) == 0 {
		fmt.Fprintln(w, app.Theme.Subtle.Render("No global shortcuts."))
		return nil
	}

	codec := app.Registry.Codec()
	for _, key := range keys {
		desc := codec.MakeDescriptor(key.Code(), key.Modifiers())
		fmt.Fprintf(w, "  %s  %s\n", app.Theme.KeyCaps([]string{desc.Name}), app.Theme.Subtle.Render(strings.Join(app.Registry.ActionIDsForKey(key), ", ")))
	}
	return nil
}
