package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/playlint/internal/config"
)

// TextWriter outputs a human-readable summary of the effective configuration.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, cfg *config.Config) error {
	cfg = view(cfg)
	ew := &errWriter{w: w}

	configFile := cfg.ConfigFile
	if configFile == "" {
		configFile = "(none)"
	}
	ew.printf("playlint configuration\n")
	ew.printf("Config file: %s\n", configFile)
	if cfg.WorkDir != "" {
		ew.printf("Working directory: %s\n", cfg.WorkDir)
	}
	ew.println(strings.Repeat("-", 60))

	width := 0
	for _, key := range optionKeys() {
		width = max(width, len(key))
	}
	for _, key := range optionKeys() {
		ew.printf("%-*s  %-40s  [%s]\n", width, key, formatValue(cfg.Get(key)), sourceOf(cfg, key))
	}

	ew.println(strings.Repeat("-", 60))
	lintables := Lintables(cfg)
	if len(lintables) == 0 {
		ew.println("Lintables: none given, the project is auto-detected")
		return ew.err
	}
	ew.printf("Lintables: %d\n", len(lintables))
	for _, l := range lintables {
		if l.Excluded {
			ew.printf("  %s (excluded)\n", l.Path)
			continue
		}
		ew.printf("  %s\n", l.Path)
	}
	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

// formatValue renders an option value on a single line.
func formatValue(v any) string {
	switch val := v.(type) {
	case []string:
		if len(val) == 0 {
			return "[]"
		}
		return "[" + strings.Join(val, ", ") + "]"
	case map[string]any:
		if len(val) == 0 {
			return "{}"
		}
		parts := make([]string, 0, len(val))
		for _, k := range sortedMapKeys(val) {
			parts = append(parts, fmt.Sprintf("%s=%v", k, val[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case string:
		if val == "" {
			return `""`
		}
		return val
	default:
		return fmt.Sprint(val)
	}
}
