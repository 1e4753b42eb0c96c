package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/keyroute/internal/cli/styles"
	"github.com/bnema/keyroute/internal/infrastructure/config"
	"github.com/bnema/keyroute/internal/logging"
)

var (
	configForce       bool
	configWriteSchema bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Print the config file location, write the defaults, or emit the JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the config file path",
	Annotations: noApp,
	RunE:        runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Write the default bindings and demo actions to the config file.
An existing file is kept unless --force is given.`,
	Annotations: noApp,
	RunE:        runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the config JSON schema",
	Long: `Print the JSON schema of the config file, for editor completion.
With --write the schema is saved as config.schema.json next to the config.`,
	Annotations: noApp,
	RunE:        runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configSchemaCmd.Flags().BoolVar(&configWriteSchema, "write", false, "write config.schema.json next to the config file")
}

func resolveConfigFile() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	path, err := config.GetConfigFile()
	if err != nil {
		return "", fmt.Errorf("get config file path: %w", err)
	}
	return path, nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigFile()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(styles.NewTheme(nil))
	w := cmd.OutOrStdout()

	path, err := resolveConfigFile()
	if err != nil {
		fmt.Fprintln(w, renderer.RenderError(err))
		return err
	}

	if _, statErr := os.Stat(path); statErr == nil && !configForce {
		fmt.Fprintln(w, renderer.RenderExists(path))
		return nil
	} else if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		fmt.Fprintln(w, renderer.RenderError(statErr))
		return statErr
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		fmt.Fprintln(w, renderer.RenderError(err))
		return err
	}
	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		fmt.Fprintln(w, renderer.RenderError(err))
		return err
	}
	logging.FromContext(commandContext(cmd)).Debug().
		Str("path", path).
		Bool("force", configForce).
		Msg("default config written")
	fmt.Fprintln(w, renderer.RenderConfigInfo(path, true))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if !configWriteSchema {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	path, err := resolveConfigFile()
	if err != nil {
		return err
	}
	schemaFile, err := config.GenerateSchemaFile(path)
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(styles.NewTheme(nil))
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderWritten("schema", schemaFile))
	return nil
}
