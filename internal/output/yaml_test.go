package output

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestYAMLWriter(t *testing.T) {
	cfg := sampleConfig(t.TempDir())

	var buf bytes.Buffer
	w := &YAMLWriter{}
	if err := w.Write(&buf, cfg); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var parsed map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}

	warn, ok := parsed["warn_list"].([]any)
	if !ok || len(warn) != 1 || warn[0] != "experimental" {
		t.Errorf("warn_list = %v, want [experimental]", parsed["warn_list"])
	}
	vars, ok := parsed["extra_vars"].(map[string]any)
	if !ok || vars["env"] != "prod" || vars["count"] != 2 {
		t.Errorf("extra_vars = %v, want env=prod count=2", parsed["extra_vars"])
	}
	if _, ok := parsed["sources"]; ok {
		t.Error("sources should not be serialized")
	}
}
