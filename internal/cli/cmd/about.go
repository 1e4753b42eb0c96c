package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/keyroute/internal/cli/styles"
	"github.com/bnema/keyroute/internal/logging"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info, the detected platform and the repository URL.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	schema, err := app.SchemaVersion(app.Ctx())
	if err != nil {
		logging.FromContext(app.Ctx()).Warn().Err(err).Msg("read usage schema version")
		schema = -1
	}

	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(app.BuildInfo, string(app.Platform.Platform()), schema))
	return nil
}
