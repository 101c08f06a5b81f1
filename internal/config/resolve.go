package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/dshills/playlint/internal/logging"
)

// Resolver builds the effective Config from argv, an optional config file
// and the built-in defaults.
type Resolver struct {
	// WorkDir anchors CLI paths and the default config search. Empty means
	// the process working directory at Resolve time.
	WorkDir string
	// SearchPaths overrides DefaultSearchPaths when non-nil.
	SearchPaths []string
	// ProjectRoot, when set, locates the project root containing a
	// directory. It fills project_dir when neither source sets it.
	ProjectRoot func(dir string) (string, error)
	Logger      *slog.Logger
}

// Resolve builds the effective configuration using a zero Resolver.
func Resolve(args []string) (*Config, error) {
	var r Resolver
	return r.Resolve(args)
}

// Resolve parses args, loads the selected config file and merges both over
// the defaults. Any failure aborts resolution; a partial Config is never
// returned.
func (r *Resolver) Resolve(args []string) (*Config, error) {
	workDir, err := r.workDir()
	if err != nil {
		return nil, err
	}
	log := r.logger()

	path, explicit := explicitConfigFile(args)
	if !explicit {
		path = r.Discover(workDir)
	}

	var file *FileConfig
	if path != "" {
		log.Debug("loading config file", "path", path, "explicit", explicit)
		file, err = LoadFile(r.readPath(path, workDir), explicit)
		var notFound *ConfigNotFoundError
		switch {
		case err != nil && !explicit && errors.As(err, &notFound):
			// Only an explicit -c miss is fatal.
			log.Warn("skipping unreadable config file", "path", path, "error", notFound.Err)
		case err != nil:
			return nil, err
		}
	} else {
		log.Debug("no config file found, using defaults", "searched", r.searchPaths())
	}

	cli, err := ParseArgs(args, workDir)
	if err != nil {
		return nil, err
	}

	cfg := r.merge(file, cli, workDir)
	if file != nil {
		cfg.ConfigFile = path
	}
	if cfg.Sources[KeyProjectDir] == SourceDefault {
		r.detectProjectDir(cfg, file, workDir)
	}
	log.Debug("configuration resolved",
		"config_file", cfg.ConfigFile,
		"lintables", len(cfg.Lintables),
		"write_list", cfg.Write.String(),
	)
	return cfg, nil
}

// Discover returns the first default search path that exists under workDir,
// or "" when none does.
func (r *Resolver) Discover(workDir string) string {
	for _, candidate := range r.searchPaths() {
		p := candidate
		if !filepath.IsAbs(p) {
			p = filepath.Join(workDir, p)
		}
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// detectProjectDir asks ProjectRoot for the root above the config file, or
// above workDir when no real file was loaded. Failure leaves project_dir empty.
func (r *Resolver) detectProjectDir(cfg *Config, file *FileConfig, workDir string) {
	if r.ProjectRoot == nil {
		return
	}
	anchor := workDir
	if file != nil && file.Path != "" && !isNullDevice(file.Path) {
		anchor = file.Dir()
	}
	root, err := r.ProjectRoot(anchor)
	if err != nil || root == "" {
		r.logger().Debug("project directory not detected", "from", anchor, "error", err)
		return
	}
	cfg.ProjectDir = NormalizePath(root, anchor)
	r.logger().Debug("project directory detected", "path", cfg.ProjectDir)
}

func (r *Resolver) merge(file *FileConfig, cli *CLIOptions, workDir string) *Config {
	cfg := Default()
	cfg.WorkDir = workDir
	cfg.Lintables = cli.Lintables

	fileDir := file.Dir()
	for _, opt := range Options {
		var (
			fileVal, inFile = fileValue(file, opt.Name)
			cliVal, inCLI   = cli.Value(opt.Name)
		)

		switch opt.Strategy {
		case StrategyOverride:
			switch {
			case inCLI:
				cfg.set(opt.Name, r.normalize(opt, cliVal, workDir))
				cfg.Sources[opt.Name] = SourceCLI
			case inFile:
				cfg.set(opt.Name, r.normalize(opt, fileVal, fileDir))
				cfg.Sources[opt.Name] = SourceFile
			}

		case StrategyListAppend, StrategyListUnion:
			if !inFile && !inCLI {
				continue
			}
			var merged []string
			if inFile {
				merged = append(merged, r.normalize(opt, fileVal, fileDir).([]string)...)
			}
			if inCLI {
				cliList := r.normalize(opt, cliVal, workDir).([]string)
				if opt.Strategy == StrategyListUnion {
					merged = union(merged, cliList)
				} else {
					merged = append(merged, cliList...)
				}
			}
			if merged == nil {
				merged = []string{}
			}
			cfg.set(opt.Name, merged)
			cfg.Sources[opt.Name] = listSource(inFile, inCLI)

		case StrategyWriteSet:
			var fromFile []string
			if inFile {
				fromFile = fileVal.([]string)
			}
			merged := MergeWriteList(fromFile, cli.WriteList())
			if len(merged) == 0 {
				continue
			}
			cfg.set(opt.Name, merged)
			if inCLI {
				cfg.Sources[opt.Name] = SourceCLI
			} else {
				cfg.Sources[opt.Name] = SourceFile
			}
		}
	}
	return cfg
}

// normalize is the single place path options get their anchor: the config
// file directory for file values, the working directory for CLI values.
func (r *Resolver) normalize(opt Option, v any, anchor string) any {
	if !opt.Path {
		return v
	}
	switch val := v.(type) {
	case string:
		if val == "" {
			return val
		}
		return NormalizePath(val, anchor)
	case []string:
		out := make([]string, len(val))
		for i, p := range val {
			out[i] = NormalizePath(p, anchor)
		}
		return out
	}
	return v
}

func fileValue(file *FileConfig, key string) (any, bool) {
	if file == nil {
		return nil, false
	}
	v, ok := file.Values[key]
	return v, ok
}

func union(base, extra []string) []string {
	out := slices.Clone(base)
	for _, item := range extra {
		if !slices.Contains(out, item) {
			out = append(out, item)
		}
	}
	return out
}

func listSource(inFile, inCLI bool) Source {
	switch {
	case inFile && inCLI:
		return SourceFileCLI
	case inCLI:
		return SourceCLI
	default:
		return SourceFile
	}
}

func (r *Resolver) workDir() (string, error) {
	if r.WorkDir != "" {
		return filepath.Abs(r.WorkDir)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return wd, nil
}

// readPath anchors a relative config file path to workDir. The null device
// is passed through untouched.
func (r *Resolver) readPath(path, workDir string) string {
	if isNullDevice(path) {
		return path
	}
	p := expandPath(path)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(workDir, p)
}

func (r *Resolver) searchPaths() []string {
	if r.SearchPaths != nil {
		return r.SearchPaths
	}
	return DefaultSearchPaths
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return logging.Nop()
}
