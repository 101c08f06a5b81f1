package output

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestJSONWriter(t *testing.T) {
	cfg := sampleConfig(t.TempDir())

	var buf bytes.Buffer
	w := &JSONWriter{}
	if err := w.Write(&buf, cfg); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if parsed["config_file"] != ".ansible-lint" {
		t.Errorf("config_file = %v, want %q", parsed["config_file"], ".ansible-lint")
	}
	if parsed["format"] != "rich" {
		t.Errorf("format = %v, want %q", parsed["format"], "rich")
	}
	write, ok := parsed["write_list"].([]any)
	if !ok || len(write) != 2 || write[0] != "yaml" || write[1] != "name[casing]" {
		t.Errorf("write_list = %v, want [yaml name[casing]]", parsed["write_list"])
	}
	if _, ok := parsed["WorkDir"]; ok {
		t.Error("WorkDir should not be serialized")
	}
}

func TestJSONWriter_NestedNonStringKeys(t *testing.T) {
	cfg := sampleConfig(t.TempDir())
	cfg.ExtraVars = map[string]any{"ports": map[any]any{80: "http"}}

	var buf bytes.Buffer
	if err := (&JSONWriter{}).Write(&buf, cfg); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var parsed struct {
		ExtraVars map[string]map[string]string `json:"extra_vars"`
	}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if got := parsed.ExtraVars["ports"]["80"]; got != "http" {
		t.Errorf("extra_vars.ports.80 = %q, want http", got)
	}
}
