package output

import (
	"io"
	"strings"

	"github.com/dshills/playlint/internal/config"
)

// MarkdownWriter outputs the effective configuration as a markdown table.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, cfg *config.Config) error {
	cfg = view(cfg)
	ew := &errWriter{w: w}

	ew.printf("## playlint configuration\n\n")
	if cfg.ConfigFile != "" {
		ew.printf("Config file: `%s`\n\n", cfg.ConfigFile)
	} else {
		ew.printf("No config file, defaults and command line only.\n\n")
	}

	ew.printf("| Option | Value | Source |\n")
	ew.printf("|--------|-------|--------|\n")
	for _, key := range optionKeys() {
		ew.printf("| `%s` | %s | %s |\n", key, mdEscape(formatValue(cfg.Get(key))), sourceOf(cfg, key))
	}

	lintables := Lintables(cfg)
	if len(lintables) == 0 {
		return ew.err
	}
	ew.printf("\n<details>\n<summary>Lintables (%d)</summary>\n\n", len(lintables))
	for _, l := range lintables {
		status := ""
		if l.Excluded {
			status = " *(excluded)*"
		}
		ew.printf("- `%s`%s\n", l.Path, status)
	}
	ew.printf("\n</details>\n")
	return ew.err
}

func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
