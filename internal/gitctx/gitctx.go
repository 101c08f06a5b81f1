package gitctx

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotRepository is returned when dir is not inside a git work tree.
var ErrNotRepository = errors.New("not a git repository")

// RepoRoot returns the top-level directory of the work tree containing dir.
func RepoRoot(dir string) (string, error) {
	out, err := gitOutput(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotRepository, err)
	}
	return strings.TrimSpace(out), nil
}

// GitDir returns the absolute git directory for the repository containing dir.
func GitDir(dir string) (string, error) {
	out, err := gitOutput(dir, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotRepository, err)
	}
	return strings.TrimSpace(out), nil
}

func gitOutput(dir string, args ...string) (string, error) {
	if dir != "" {
		args = append([]string{"-C", dir}, args...)
	}
	cmd := exec.Command("git", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return string(out), nil
}
