package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Source identifies where a resolved value came from.
type Source string

const (
	SourceDefault Source = "default"
	SourceFile    Source = "file"
	SourceCLI     Source = "cli"
	// SourceFileCLI marks list options both sources contributed to.
	SourceFileCLI Source = "file+cli"
)

// Config is the effective configuration for one invocation. It is built once
// by a Resolver and must be treated as read-only afterwards; path options are
// absolute and canonical.
type Config struct {
	ConfigFile string `json:"config_file" yaml:"config_file"`

	ExcludePaths    []string `json:"exclude_paths" yaml:"exclude_paths"`
	RulesDir        []string `json:"rulesdir" yaml:"rulesdir"`
	UseDefaultRules bool     `json:"use_default_rules" yaml:"use_default_rules"`

	Tags        []string `json:"tags" yaml:"tags"`
	SkipTags    []string `json:"skip_tags" yaml:"skip_tags"`
	WarnList    []string `json:"warn_list" yaml:"warn_list"`
	EnableList  []string `json:"enable_list" yaml:"enable_list"`
	MockModules []string `json:"mock_modules" yaml:"mock_modules"`
	MockRoles   []string `json:"mock_roles" yaml:"mock_roles"`

	Write     WriteSet       `json:"write_list" yaml:"write_list"`
	ExtraVars map[string]any `json:"extra_vars" yaml:"extra_vars"`

	Verbosity           int    `json:"verbosity" yaml:"verbosity"`
	Quiet               bool   `json:"quiet" yaml:"quiet"`
	Parseable           bool   `json:"parseable" yaml:"parseable"`
	Strict              bool   `json:"strict" yaml:"strict"`
	DisplayRelativePath bool   `json:"display_relative_path" yaml:"display_relative_path"`
	Offline             bool   `json:"offline" yaml:"offline"`
	Profile             string `json:"profile" yaml:"profile"`
	Format              string `json:"format" yaml:"format"`
	ProjectDir          string `json:"project_dir" yaml:"project_dir"`
	SarifFile           string `json:"sarif_file" yaml:"sarif_file"`

	Lintables []string `json:"lintables" yaml:"lintables"`

	// WorkDir is the working directory CLI paths were anchored to.
	WorkDir string `json:"-" yaml:"-"`
	// Sources maps each option key to the origin of its value.
	Sources map[string]Source `json:"-" yaml:"-"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	cfg := &Config{Sources: make(map[string]Source, len(Options))}
	for _, opt := range Options {
		cfg.set(opt.Name, defaultValue(opt))
		cfg.Sources[opt.Name] = SourceDefault
	}
	return cfg
}

func defaultValue(opt Option) any {
	switch opt.Name {
	case KeyWarnList:
		return DefaultWarnList()
	case KeyFormat:
		return DefaultFormat
	}
	switch opt.Kind {
	case KindBool:
		return false
	case KindInt:
		return 0
	case KindString, KindEnum:
		return ""
	case KindList:
		return []string{}
	case KindMapping:
		return map[string]any{}
	case KindWriteSet:
		return []string{WriteNone}
	}
	return nil
}

// set assigns a merged value to the field for key.
func (c *Config) set(key string, v any) {
	switch key {
	case KeyExcludePaths:
		c.ExcludePaths = v.([]string)
	case KeyRulesDir:
		c.RulesDir = v.([]string)
	case KeyUseDefaultRules:
		c.UseDefaultRules = v.(bool)
	case KeyTags:
		c.Tags = v.([]string)
	case KeySkipTags:
		c.SkipTags = v.([]string)
	case KeyWarnList:
		c.WarnList = v.([]string)
	case KeyEnableList:
		c.EnableList = v.([]string)
	case KeyMockModules:
		c.MockModules = v.([]string)
	case KeyMockRoles:
		c.MockRoles = v.([]string)
	case KeyWriteList:
		c.Write = ParseWriteList(v.([]string))
	case KeyExtraVars:
		c.ExtraVars = v.(map[string]any)
	case KeyVerbosity:
		c.Verbosity = v.(int)
	case KeyQuiet:
		c.Quiet = v.(bool)
	case KeyParseable:
		c.Parseable = v.(bool)
	case KeyStrict:
		c.Strict = v.(bool)
	case KeyDisplayRelativePath:
		c.DisplayRelativePath = v.(bool)
	case KeyOffline:
		c.Offline = v.(bool)
	case KeyProfile:
		c.Profile = v.(string)
	case KeyFormat:
		c.Format = v.(string)
	case KeyProjectDir:
		c.ProjectDir = v.(string)
	case KeySarifFile:
		c.SarifFile = v.(string)
	}
}

// Get returns the value of the option with the given key, or nil for an
// unknown key. Write sets are returned in their write_list form.
func (c *Config) Get(key string) any {
	switch key {
	case KeyExcludePaths:
		return c.ExcludePaths
	case KeyRulesDir:
		return c.RulesDir
	case KeyUseDefaultRules:
		return c.UseDefaultRules
	case KeyTags:
		return c.Tags
	case KeySkipTags:
		return c.SkipTags
	case KeyWarnList:
		return c.WarnList
	case KeyEnableList:
		return c.EnableList
	case KeyMockModules:
		return c.MockModules
	case KeyMockRoles:
		return c.MockRoles
	case KeyWriteList:
		return c.Write.List()
	case KeyExtraVars:
		return c.ExtraVars
	case KeyVerbosity:
		return c.Verbosity
	case KeyQuiet:
		return c.Quiet
	case KeyParseable:
		return c.Parseable
	case KeyStrict:
		return c.Strict
	case KeyDisplayRelativePath:
		return c.DisplayRelativePath
	case KeyOffline:
		return c.Offline
	case KeyProfile:
		return c.Profile
	case KeyFormat:
		return c.Format
	case KeyProjectDir:
		return c.ProjectDir
	case KeySarifFile:
		return c.SarifFile
	}
	return nil
}

// Excluded reports whether a lintable path falls under one of ExcludePaths,
// either as the path itself, a descendant of it, or a glob match.
func (c *Config) Excluded(path string) bool {
	anchor := c.WorkDir
	if anchor == "" {
		anchor, _ = os.Getwd()
	}
	p := NormalizePath(path, anchor)
	for _, ex := range c.ExcludePaths {
		if p == ex || strings.HasPrefix(p, ex+string(filepath.Separator)) {
			return true
		}
		if ok, err := doublestar.PathMatch(ex, p); err == nil && ok {
			return true
		}
	}
	return false
}

// MarshalYAML renders the write set in its write_list form.
func (ws WriteSet) MarshalYAML() (any, error) {
	return ws.List(), nil
}

// MarshalJSON renders the write set in its write_list form.
func (ws WriteSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(ws.List())
}
