package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/playlint/internal/config"
)

// JSONWriter outputs the effective configuration as JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, cfg *config.Config) error {
	cfg = view(cfg)
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
