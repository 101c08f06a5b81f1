package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FileConfig is the validated content of a config file. Values are keyed by
// option name; list options hold []string, path options are not normalized.
type FileConfig struct {
	Path   string
	Values map[string]any
}

// Dir returns the directory the file's relative paths are anchored to.
func (f *FileConfig) Dir() string {
	if f == nil || f.Path == "" {
		return ""
	}
	if abs, err := filepath.Abs(f.Path); err == nil {
		return filepath.Dir(abs)
	}
	return filepath.Dir(f.Path)
}

// Has reports whether the file sets key.
func (f *FileConfig) Has(key string) bool {
	if f == nil {
		return false
	}
	_, ok := f.Values[key]
	return ok
}

// LoadFile reads and validates the config file at path. A null device path
// yields an empty config. When explicit is false a missing file is not an
// error and LoadFile returns (nil, nil).
func LoadFile(path string, explicit bool) (*FileConfig, error) {
	if isNullDevice(path) {
		return &FileConfig{Path: path, Values: map[string]any{}}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &ConfigNotFoundError{Path: path, Err: err}
	}
	return ParseFile(path, data)
}

// ParseFile decodes and validates config file content.
func ParseFile(path string, data []byte) (*FileConfig, error) {
	var doc any
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, &ConfigParseError{Path: path, Line: yamlErrorLine(err), Err: err}
		}
	}
	if doc == nil {
		return &FileConfig{Path: path, Values: map[string]any{}}, nil
	}

	if raw, ok := doc.(map[string]any); ok {
		if key := firstUnknownKey(raw); key != "" {
			return nil, &ConfigSchemaError{Path: path, Key: key, Message: "unknown option"}
		}
	}
	if err := validateDocument(path, doc); err != nil {
		return nil, err
	}

	raw := doc.(map[string]any)
	values := make(map[string]any, len(raw))
	for key, v := range raw {
		opt, _ := Lookup(key)
		coerced, err := coerceValue(opt, v)
		if err != nil {
			return nil, &ConfigSchemaError{Path: path, Key: key, Message: err.Error()}
		}
		values[key] = coerced
	}
	return &FileConfig{Path: path, Values: values}, nil
}

func firstUnknownKey(raw map[string]any) string {
	var unknown []string
	for key := range raw {
		if _, ok := Lookup(key); !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return ""
	}
	sort.Strings(unknown)
	return unknown[0]
}

// coerceValue converts a schema-valid YAML value into the option's Go type.
func coerceValue(opt Option, v any) (any, error) {
	switch opt.Kind {
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("expected boolean, got %T", v)
		}
		return b, nil
	case KindInt:
		switch n := v.(type) {
		case int:
			return n, nil
		case int64:
			return int(n), nil
		case uint64:
			return int(n), nil
		case float64:
			return int(n), nil
		}
		return nil, fmt.Errorf("expected integer, got %T", v)
	case KindString, KindEnum:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		return s, nil
	case KindList, KindWriteSet:
		return toStringList(v)
	case KindMapping:
		if v == nil {
			return map[string]any{}, nil
		}
		switch m := v.(type) {
		case map[string]any:
			return m, nil
		case map[any]any:
			// Top-level keys become strings; nested values are kept as decoded.
			out := make(map[string]any, len(m))
			for k, item := range m {
				out[fmt.Sprint(k)] = item
			}
			return out, nil
		}
		return nil, fmt.Errorf("expected mapping, got %T", v)
	}
	return v, nil
}

func toStringList(v any) ([]string, error) {
	switch val := v.(type) {
	case nil:
		return []string{}, nil
	case string:
		return []string{val}, nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected list of strings, got %T item", item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected list of strings, got %T", v)
}

var yamlLineRe = regexp.MustCompile(`line (\d+)`)

// yamlErrorLine extracts the line number yaml.v3 embeds in its messages.
func yamlErrorLine(err error) int {
	m := yamlLineRe.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// WriteFile writes values as a YAML config file, creating parent directories.
func WriteFile(path string, values map[string]any) error {
	for key := range values {
		if _, ok := Lookup(key); !ok {
			return fmt.Errorf("unknown config key: %s", key)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// StarterValues returns the content written by "config init".
func StarterValues() map[string]any {
	return map[string]any{
		KeyExcludePaths: []string{".cache/", ".github/"},
		KeyProfile:      "basic",
		KeyWarnList:     DefaultWarnList(),
		KeySkipTags:     []string{},
		KeyWriteList:    []string{"none"},
		KeyVerbosity:    0,
	}
}
