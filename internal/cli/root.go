package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dshills/playlint/internal/config"
	"github.com/dshills/playlint/internal/gitctx"
	"github.com/dshills/playlint/internal/logging"
	"github.com/dshills/playlint/internal/output"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitRuntimeError = 2
	ExitConfigError  = config.ExitConfigError
)

var rootCmd = &cobra.Command{
	Use:   "playlint [flags] [lintable...]",
	Short: "Lint Ansible playbooks and roles",
	Long: "playlint resolves its effective configuration from the command line, " +
		"an .ansible-lint config file and built-in defaults, then reports the lintables to check.",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd, args)
		if errors.Is(err, pflag.ErrHelp) {
			return cmd.Help()
		}
		if err != nil {
			return err
		}

		logger := newLogger(cmd.ErrOrStderr(), cfg.Verbosity)
		for _, l := range output.Lintables(cfg) {
			if l.Excluded {
				logger.Info("lintable excluded", "path", l.Path)
			}
		}
		if cfg.Quiet {
			return nil
		}
		return (&output.TextWriter{}).Write(cmd.OutOrStdout(), cfg)
	},
}

// Run executes the root command with args and returns an exit code.
func Run(args []string) int {
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func exitCodeFor(err error) int {
	if config.IsConfigError(err) {
		return ExitConfigError
	}
	return ExitRuntimeError
}

func printError(w io.Writer, err error) {
	if kind := config.ErrorKind(err); kind != "" {
		fmt.Fprintf(w, "Error: %s: %v\n", kind, err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// resolveConfig runs the resolver against the process working directory.
// The returned error is pflag.ErrHelp when args ask for help.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	r := &config.Resolver{
		ProjectRoot: gitctx.RepoRoot,
		Logger:      newLogger(cmd.ErrOrStderr(), 0),
	}
	return r.Resolve(args)
}

// newLogger builds the command logger from PLAYLINT_LOG_LEVEL and
// PLAYLINT_LOG_FORMAT; -v lowers the level.
func newLogger(w io.Writer, verbosity int) *slog.Logger {
	cfg := logging.FromEnv()
	cfg.Output = w
	cfg.Level = logging.LevelForVerbosity(cfg.Level, verbosity)
	return logging.New(cfg)
}

func init() {
	rootCmd.Flags().AddFlagSet(config.NewFlagSet("playlint"))
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(versionCmd)
}
