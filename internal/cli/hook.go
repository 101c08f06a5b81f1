package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/playlint/internal/gitctx"
)

const (
	hookMarkerStart = "# >>> playlint config check >>>"
	hookMarkerEnd   = "# <<< playlint config check <<<"
)

var hookConfigFile string

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Manage the git pre-commit hook that validates configuration",
}

var hookInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Block commits while the playlint configuration is invalid",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		hookPath, err := getHookPath()
		if err != nil {
			return err
		}

		section := generateHookScript(hookConfigFile)

		existing, err := os.ReadFile(hookPath)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("reading hook file: %w", err)
		}

		var content string
		if len(existing) == 0 {
			content = "#!/bin/sh\n" + section
		} else {
			content = replaceHookSection(string(existing), section)
		}

		if err := os.MkdirAll(filepath.Dir(hookPath), 0o755); err != nil {
			return fmt.Errorf("creating hooks directory: %w", err)
		}
		if err := os.WriteFile(hookPath, []byte(content), 0o755); err != nil {
			return fmt.Errorf("writing hook file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Installed playlint pre-commit hook at %s\n", hookPath)
		return nil
	},
}

var hookUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the playlint pre-commit hook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		hookPath, err := getHookPath()
		if err != nil {
			return err
		}

		existing, err := os.ReadFile(hookPath)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintln(cmd.OutOrStdout(), "No pre-commit hook found.")
				return nil
			}
			return fmt.Errorf("reading hook file: %w", err)
		}

		content := removeHookSection(string(existing))

		// Nothing but a shebang left: remove the file.
		trimmed := strings.TrimSpace(content)
		if trimmed == "" || trimmed == "#!/bin/sh" || trimmed == "#!/bin/bash" {
			if err := os.Remove(hookPath); err != nil {
				return fmt.Errorf("removing hook file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed playlint pre-commit hook at %s\n", hookPath)
			return nil
		}

		if err := os.WriteFile(hookPath, []byte(content), 0o755); err != nil {
			return fmt.Errorf("writing hook file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed playlint section from %s\n", hookPath)
		return nil
	},
}

func getHookPath() (string, error) {
	gitDir, err := gitctx.GitDir("")
	if err != nil {
		return "", err
	}
	return filepath.Join(gitDir, "hooks", "pre-commit"), nil
}

// generateHookScript returns the hook section. Only exit code 3, a
// configuration failure, blocks the commit.
func generateHookScript(configFile string) string {
	check := "playlint config path"
	if configFile != "" {
		check += " -c " + shellQuote(configFile)
	}

	var b strings.Builder
	b.WriteString(hookMarkerStart + "\n")
	b.WriteString(check + " >/dev/null\n")
	b.WriteString("PLAYLINT_EXIT=$?\n")
	fmt.Fprintf(&b, "if [ $PLAYLINT_EXIT -eq %d ]; then\n", ExitConfigError)
	b.WriteString("  echo \"playlint: configuration is invalid, commit blocked\"\n")
	b.WriteString("  exit 1\n")
	b.WriteString("elif [ $PLAYLINT_EXIT -ne 0 ]; then\n")
	b.WriteString("  echo \"playlint: config check failed (exit $PLAYLINT_EXIT), allowing commit\"\n")
	b.WriteString("fi\n")
	b.WriteString(hookMarkerEnd + "\n")
	return b.String()
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func replaceHookSection(existing, section string) string {
	startIdx := strings.Index(existing, hookMarkerStart)
	endIdx := strings.Index(existing, hookMarkerEnd)

	if startIdx == -1 || endIdx == -1 {
		if !strings.HasSuffix(existing, "\n") {
			existing += "\n"
		}
		return existing + section
	}

	before := existing[:startIdx]
	after := strings.TrimPrefix(existing[endIdx+len(hookMarkerEnd):], "\n")
	return before + section + after
}

func removeHookSection(existing string) string {
	startIdx := strings.Index(existing, hookMarkerStart)
	endIdx := strings.Index(existing, hookMarkerEnd)

	if startIdx == -1 || endIdx == -1 {
		return existing
	}

	before := existing[:startIdx]
	after := strings.TrimPrefix(existing[endIdx+len(hookMarkerEnd):], "\n")
	return before + after
}

func init() {
	hookCmd.AddCommand(hookInstallCmd)
	hookCmd.AddCommand(hookUninstallCmd)
	hookInstallCmd.Flags().StringVarP(&hookConfigFile, "config-file", "c", "", "config file the hook should check")
}
