package redact

import (
	"fmt"
	"regexp"
	"strings"
)

// Placeholder replaces every masked value.
const Placeholder = "[REDACTED]"

var secretKey = regexp.MustCompile(`(?i)(passw(or)?d|secret|token|api[_-]?key|credential|private[_-]?key|become_pass|vault_pass)`)

// secretValues are heuristics for secrets that show up under innocent keys.
var secretValues = []*regexp.Regexp{
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`),
	regexp.MustCompile(`-----BEGIN\s+([A-Z]+\s+)?PRIVATE KEY-----`),
	regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`),
	regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`),
	regexp.MustCompile(`xox[bporas]-[A-Za-z0-9-]{10,}`),
	regexp.MustCompile(`\$ANSIBLE_VAULT;`),
}

// IsSecretKey reports whether a variable name suggests its value is secret.
func IsSecretKey(key string) bool {
	return secretKey.MatchString(key)
}

// Secrets replaces secret-shaped substrings of text with Placeholder.
func Secrets(text string) string {
	for _, pat := range secretValues {
		if pat.MatchString(text) {
			// Vault blobs and key blocks span lines; mask the whole value.
			if strings.Contains(text, "\n") {
				return Placeholder
			}
			text = pat.ReplaceAllString(text, Placeholder)
		}
	}
	return text
}

// Vars returns a copy of vars with secret values masked. Nested mappings and
// lists are walked; the input is never modified.
func Vars(vars map[string]any) map[string]any {
	if vars == nil {
		return nil
	}
	out := make(map[string]any, len(vars))
	for k, v := range vars {
		if IsSecretKey(k) && v != nil {
			out[k] = Placeholder
			continue
		}
		out[k] = value(v)
	}
	return out
}

func value(v any) any {
	switch val := v.(type) {
	case string:
		return Secrets(val)
	case map[string]any:
		return Vars(val)
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			m[fmt.Sprint(k)] = item
		}
		return Vars(m)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = value(item)
		}
		return out
	default:
		return v
	}
}
