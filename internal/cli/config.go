package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dshills/playlint/internal/config"
	"github.com/dshills/playlint/internal/output"
)

// outputEnv selects the config show format. It is read from the environment
// because every flag on that command belongs to the linter.
const outputEnv = "PLAYLINT_OUTPUT"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create playlint configuration",
}

var configShowCmd = &cobra.Command{
	Use:                "show [flags] [lintable...]",
	Short:              "Show the effective configuration",
	Long:               "Show the configuration that the same flags would produce. Set " + outputEnv + " to yaml, json, text or markdown.",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		writer, err := output.GetWriter(os.Getenv(outputEnv))
		if err != nil {
			return err
		}

		cfg, err := resolveConfig(cmd, args)
		if errors.Is(err, pflag.ErrHelp) {
			return cmd.Help()
		}
		if err != nil {
			return err
		}
		return writer.Write(cmd.OutOrStdout(), cfg)
	},
}

var configPathCmd = &cobra.Command{
	Use:                "path [flags]",
	Short:              "Print the config file that would be used",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd, args)
		if errors.Is(err, pflag.ErrHelp) {
			return cmd.Help()
		}
		if err != nil {
			return err
		}

		if cfg.ConfigFile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "none")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), cfg.ConfigFile)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter .ansible-lint in the working directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}

		r := &config.Resolver{WorkDir: wd}
		if existing := r.Discover(wd); existing != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Config file already exists at %s\n", existing)
			return nil
		}

		path := filepath.Join(wd, config.DefaultSearchPaths[0])
		if err := config.WriteFile(path, config.StarterValues()); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Config file created at %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}
