package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dshills/playlint/internal/config"
)

// YAMLWriter outputs the effective configuration in config file form.
type YAMLWriter struct{}

func (y *YAMLWriter) Write(w io.Writer, cfg *config.Config) error {
	cfg = view(cfg)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("writing YAML: %w", err)
	}
	return enc.Close()
}
