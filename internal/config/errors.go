package config

import (
	"errors"
	"fmt"
)

// ExitConfigError is the process exit code for any configuration failure.
const ExitConfigError = 3

// CLISyntaxError reports malformed command-line arguments.
type CLISyntaxError struct {
	Token string
	Err   error
}

func (e *CLISyntaxError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("invalid arguments near %q: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("invalid arguments: %v", e.Err)
}

func (e *CLISyntaxError) Unwrap() error { return e.Err }

// ConfigNotFoundError reports an explicitly requested config file that
// could not be read.
type ConfigNotFoundError struct {
	Path string
	Err  error
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("config file %s not found: %v", e.Path, e.Err)
}

func (e *ConfigNotFoundError) Unwrap() error { return e.Err }

// ConfigParseError reports a config file that is not valid YAML.
type ConfigParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ConfigParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("config file %s (line %d) is not valid YAML: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("config file %s is not valid YAML: %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error { return e.Err }

// ConfigSchemaError reports a config file key that is unknown or whose value
// has the wrong type.
type ConfigSchemaError struct {
	Path    string
	Key     string
	Message string
}

func (e *ConfigSchemaError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("config file %s: %s: %s", e.Path, e.Key, e.Message)
	}
	return fmt.Sprintf("config file %s: %s", e.Path, e.Message)
}

// IsConfigError reports whether err is one of the configuration error kinds.
func IsConfigError(err error) bool {
	return ErrorKind(err) != ""
}

// ErrorKind returns a short label naming the configuration error kind, or "" for
// other errors.
func ErrorKind(err error) string {
	var (
		syntaxErr   *CLISyntaxError
		notFoundErr *ConfigNotFoundError
		parseErr    *ConfigParseError
		schemaErr   *ConfigSchemaError
	)
	switch {
	case errors.As(err, &syntaxErr):
		return "CliSyntaxError"
	case errors.As(err, &notFoundErr):
		return "ConfigNotFoundError"
	case errors.As(err, &parseErr):
		return "ConfigParseError"
	case errors.As(err, &schemaErr):
		return "ConfigSchemaError"
	}
	return ""
}
