package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/dshills/playlint/internal/config"
	"github.com/dshills/playlint/internal/redact"
)

// Writer writes a resolved configuration in a specific format.
type Writer interface {
	Write(w io.Writer, cfg *config.Config) error
}

// Formats lists the formats accepted by GetWriter.
var Formats = []string{"yaml", "json", "text", "markdown"}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "", "yaml":
		return &YAMLWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "text":
		return &TextWriter{}, nil
	case "markdown", "md":
		return &MarkdownWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// view returns a shallow copy of cfg with secret extra_vars masked. Every
// writer renders the view, never cfg itself.
func view(cfg *config.Config) *config.Config {
	v := *cfg
	v.ExtraVars = redact.Vars(cfg.ExtraVars)
	return &v
}

// Lintable is a positional path together with its exclusion status.
type Lintable struct {
	Path     string `json:"path" yaml:"path"`
	Excluded bool   `json:"excluded" yaml:"excluded"`
}

// Lintables pairs each lintable in cfg with cfg.Excluded.
func Lintables(cfg *config.Config) []Lintable {
	out := make([]Lintable, 0, len(cfg.Lintables))
	for _, p := range cfg.Lintables {
		out = append(out, Lintable{Path: p, Excluded: cfg.Excluded(p)})
	}
	return out
}

// optionKeys returns option keys in table order.
func optionKeys() []string {
	keys := make([]string, 0, len(config.Options))
	for _, opt := range config.Options {
		keys = append(keys, opt.Name)
	}
	return keys
}

func sortedMapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sourceOf(cfg *config.Config, key string) config.Source {
	if src, ok := cfg.Sources[key]; ok {
		return src
	}
	return config.SourceDefault
}
