package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/playlint/internal/config"
)

// runCLI executes the command tree in dir and captures its output.
func runCLI(t *testing.T, dir string, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	t.Chdir(dir)
	t.Setenv("PLAYLINT_LOG_LEVEL", "")
	t.Setenv("PLAYLINT_LOG_FORMAT", "")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	code = Run(args)
	return out.String(), errOut.String(), code
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestVersionCmd_Execute(t *testing.T) {
	out, _, code := runCLI(t, t.TempDir(), "version")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if out != "playlint version "+version+"\n" {
		t.Errorf("version output = %q", out)
	}
}

func TestRoot_NoConfigFile(t *testing.T) {
	out, _, code := runCLI(t, t.TempDir())
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(out, "Config file: (none)") {
		t.Errorf("output should report no config file:\n%s", out)
	}
}

func TestRoot_ReportsExcludedLintables(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".ansible-lint"), "exclude_paths:\n  - vendor\n")

	out, stderr, code := runCLI(t, dir, "-v", "site.yml", "vendor/role.yml")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(out, "vendor/role.yml (excluded)") {
		t.Errorf("output should mark vendor/role.yml excluded:\n%s", out)
	}
	if !strings.Contains(stderr, "lintable excluded") {
		t.Errorf("-v should log excluded lintables at info:\n%s", stderr)
	}
}

func TestRoot_Quiet(t *testing.T) {
	out, _, code := runCLI(t, t.TempDir(), "-q")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if out != "" {
		t.Errorf("-q should suppress output, got:\n%s", out)
	}
}

func TestRoot_Help(t *testing.T) {
	out, _, code := runCLI(t, t.TempDir(), "--help")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(out, "Usage:") || !strings.Contains(out, "--write") {
		t.Errorf("help should list the lint flags:\n%s", out)
	}
}

func TestRoot_ConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		config string
		args   []string
		kind   string
	}{
		{"unknown flag", "", []string{"--bogus"}, "CliSyntaxError"},
		{"bad enum", "", []string{"--format", "nope"}, "CliSyntaxError"},
		{"missing explicit file", "", []string{"-c", "missing.yml"}, "ConfigNotFoundError"},
		{"invalid yaml", "tags: [yaml\n", nil, "ConfigParseError"},
		{"unknown key", "no_such_option: true\n", nil, "ConfigSchemaError"},
		{"wrong type", "quiet: maybe\n", nil, "ConfigSchemaError"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.config != "" {
				writeFile(t, filepath.Join(dir, ".ansible-lint"), tt.config)
			}

			out, stderr, code := runCLI(t, dir, tt.args...)
			if code != ExitConfigError {
				t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitConfigError, stderr)
			}
			if !strings.HasPrefix(stderr, "Error: "+tt.kind+": ") {
				t.Errorf("stderr = %q, want prefix %q", stderr, "Error: "+tt.kind+": ")
			}
			if out != "" {
				t.Errorf("no output expected on failure, got:\n%s", out)
			}
		})
	}
}

func TestConfigShow_JSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".ansible-lint"), "tags: [yaml]\nwrite_list: [all]\n")
	t.Setenv(outputEnv, "json")

	out, stderr, code := runCLI(t, dir, "config", "show", "-t", "idiom", "--write", "yaml")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	var parsed struct {
		ConfigFile string   `json:"config_file"`
		Tags       []string `json:"tags"`
		WriteList  []string `json:"write_list"`
	}
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if parsed.ConfigFile != ".ansible-lint" {
		t.Errorf("config_file = %q, want %q", parsed.ConfigFile, ".ansible-lint")
	}
	if strings.Join(parsed.Tags, ",") != "yaml,idiom" {
		t.Errorf("tags = %v, want [yaml idiom]", parsed.Tags)
	}
	if strings.Join(parsed.WriteList, ",") != "yaml" {
		t.Errorf("write_list = %v, want [yaml]", parsed.WriteList)
	}
}

func TestConfigShow_DefaultsToYAML(t *testing.T) {
	t.Setenv(outputEnv, "")
	out, _, code := runCLI(t, t.TempDir(), "config", "show")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(out, "format: rich\n") {
		t.Errorf("expected YAML output:\n%s", out)
	}
}

func TestConfigShow_BadOutputFormat(t *testing.T) {
	t.Setenv(outputEnv, "xml")
	_, stderr, code := runCLI(t, t.TempDir(), "config", "show")
	if code != ExitRuntimeError {
		t.Fatalf("exit code = %d, want %d", code, ExitRuntimeError)
	}
	if !strings.Contains(stderr, "unsupported output format") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()

	out, _, code := runCLI(t, dir, "config", "path")
	if code != ExitSuccess || out != "none\n" {
		t.Errorf("no config: code = %d, out = %q", code, out)
	}

	writeFile(t, filepath.Join(dir, ".config", "ansible-lint.yml"), "quiet: true\n")
	out, _, code = runCLI(t, dir, "config", "path")
	if code != ExitSuccess || out != ".config/ansible-lint.yml\n" {
		t.Errorf("discovered config: code = %d, out = %q", code, out)
	}

	out, _, code = runCLI(t, dir, "config", "path", "-c", config.NullConfigFile)
	if code != ExitSuccess || out != config.NullConfigFile+"\n" {
		t.Errorf("null config: code = %d, out = %q", code, out)
	}
}

func TestConfigInit_CreatesFile(t *testing.T) {
	dir := t.TempDir()

	out, _, code := runCLI(t, dir, "config", "init")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	path := filepath.Join(dir, ".ansible-lint")
	if !strings.Contains(out, path) {
		t.Errorf("output should name %s, got %q", path, out)
	}

	// The starter file must itself resolve cleanly.
	r := &config.Resolver{WorkDir: dir}
	cfg, err := r.Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve after init: %v", err)
	}
	if cfg.Profile != "basic" {
		t.Errorf("Profile = %q, want %q", cfg.Profile, "basic")
	}
}

func TestConfigInit_AlreadyExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".ansible-lint.yaml")
	writeFile(t, path, "quiet: true\n")

	_, stderr, code := runCLI(t, dir, "config", "init")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stderr, "already exists") {
		t.Errorf("stderr = %q, want already exists message", stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, ".ansible-lint")); !os.IsNotExist(err) {
		t.Error("init should not write a second config file")
	}
}

func TestExitCodeFor(t *testing.T) {
	if got := exitCodeFor(&config.ConfigParseError{Path: "x"}); got != ExitConfigError {
		t.Errorf("exitCodeFor(parse error) = %d, want %d", got, ExitConfigError)
	}
	if got := exitCodeFor(os.ErrPermission); got != ExitRuntimeError {
		t.Errorf("exitCodeFor(other) = %d, want %d", got, ExitRuntimeError)
	}
}
