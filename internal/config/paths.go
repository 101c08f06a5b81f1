package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// NormalizePath expands environment variables and a leading ~ in value and
// returns a canonical absolute path with symlinks resolved. Relative results
// are resolved against anchor. Paths that do not exist are still resolved as
// far as the filesystem allows.
func NormalizePath(value, anchor string) string {
	p := expandPath(value)
	if !filepath.IsAbs(p) {
		p = filepath.Join(anchor, p)
	}
	return realPath(p)
}

// expandPath substitutes $NAME and ${NAME} first, then a leading ~, so that
// $HOME/x and ~/x agree.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	expanded := os.ExpandEnv(p)
	if expanded == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return expanded
	}
	if strings.HasPrefix(expanded, "~/") || (runtime.GOOS == "windows" && strings.HasPrefix(expanded, `~\`)) {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, expanded[2:])
		}
	}
	return expanded
}

// realPath resolves symlinks in the longest existing prefix of p and appends
// the remaining components unchanged.
func realPath(p string) string {
	p = filepath.Clean(p)
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	parent := filepath.Dir(p)
	if parent == p {
		return p
	}
	return filepath.Join(realPath(parent), filepath.Base(p))
}

// isNullDevice reports whether path names the platform null device.
func isNullDevice(path string) bool {
	if path == os.DevNull || path == NullConfigFile {
		return true
	}
	return runtime.GOOS == "windows" && strings.EqualFold(path, "NUL")
}
