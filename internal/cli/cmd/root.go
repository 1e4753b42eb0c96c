// Package cmd provides Cobra CLI commands for keyroute.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/keyroute/internal/cli"
	"github.com/bnema/keyroute/internal/domain/build"
	"github.com/bnema/keyroute/internal/logging"
)

const (
	annotationNoApp     = "keyroute/no-app"
	annotationLogToFile = "keyroute/log-to-file"
)

var (
	// noApp marks commands that run without loading config or opening the database.
	noApp = map[string]string{annotationNoApp: "true"}
	// ownsTerminal marks full-screen commands; their logs go to the log file.
	ownsTerminal = map[string]string{annotationLogToFile: "true"}
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "keyroute",
		Short: "Route key presses to application actions",
		Long: `keyroute maps key presses to registered actions and dispatches each
press to the first action that applies in the current UI context.

Bindings and the demo action catalog live in the config file. Use
'keyroute play' to press keys interactively, or the other subcommands
to inspect and resolve bindings from scripts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}
			if cmd.Annotations[annotationNoApp] != "" {
				// No config is read, so only the KEYROUTE_LOG_* variables apply.
				cmd.SetContext(logging.WithContext(commandContext(cmd), logging.NewFromEnv()))
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.AppOptions{
				ConfigFile: configFile,
				LogToFile:  cmd.Annotations[annotationLogToFile] != "",
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/keyroute/config.toml)")
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
