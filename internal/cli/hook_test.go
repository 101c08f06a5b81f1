package cli

import (
	"strings"
	"testing"
)

func TestGenerateHookScript(t *testing.T) {
	script := generateHookScript("")

	if !strings.HasPrefix(script, hookMarkerStart) {
		t.Error("Script missing start marker")
	}
	if !strings.HasSuffix(script, hookMarkerEnd+"\n") {
		t.Error("Script missing end marker")
	}
	if !strings.Contains(script, "playlint config path >/dev/null\n") {
		t.Error("Script missing config check command")
	}
	if !strings.Contains(script, "if [ $PLAYLINT_EXIT -eq 3 ]; then") {
		t.Error("Script should block on exit code 3")
	}
	if !strings.Contains(script, "allowing commit") {
		t.Error("Script missing warning for other failures")
	}
}

func TestGenerateHookScript_ConfigFile(t *testing.T) {
	script := generateHookScript("ci/it's.yml")

	want := `playlint config path -c 'ci/it'\''s.yml' >/dev/null`
	if !strings.Contains(script, want) {
		t.Errorf("Script does not pass quoted config file:\n%s", script)
	}
}

func TestReplaceHookSection(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		want     []string
		notWant  []string
	}{
		{
			name:     "no existing section",
			existing: "#!/bin/sh\nsome-other-hook\n",
			want:     []string{"#!/bin/sh\nsome-other-hook\n" + hookMarkerStart, "-c 'new.yml'"},
		},
		{
			name:     "no trailing newline",
			existing: "#!/bin/sh\nsome-hook",
			want:     []string{"some-hook\n" + hookMarkerStart},
		},
		{
			name:     "existing section replaced",
			existing: "#!/bin/sh\nbefore\n" + generateHookScript("old.yml") + "after\n",
			want:     []string{"before\n", "-c 'new.yml'", hookMarkerEnd + "\nafter\n"},
			notWant:  []string{"old.yml"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := replaceHookSection(tt.existing, generateHookScript("new.yml"))
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("result missing %q:\n%s", w, got)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("result should not contain %q:\n%s", w, got)
				}
			}
			if n := strings.Count(got, hookMarkerStart); n != 1 {
				t.Errorf("start marker count = %d, want 1", n)
			}
		})
	}
}

func TestRemoveHookSection(t *testing.T) {
	existing := "#!/bin/sh\nbefore\n" + generateHookScript("") + "after\n"

	got := removeHookSection(existing)
	if got != "#!/bin/sh\nbefore\nafter\n" {
		t.Errorf("removeHookSection = %q", got)
	}
}

func TestRemoveHookSection_NoSection(t *testing.T) {
	existing := "#!/bin/sh\nsome-hook\n"
	if got := removeHookSection(existing); got != existing {
		t.Error("Content without playlint section should be unchanged")
	}
}
