package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

const configFileFlag = "config-file"

// CLIOptions is the result of parsing argv. Only flags that were given on the
// command line count as set; defaults are applied later by the resolver.
type CLIOptions struct {
	ConfigFile string
	Lintables  []string

	fs       *pflag.FlagSet
	enums    map[string]*enumValue
	mappings map[string]*mappingValue
	write    *writeListValue
}

// Set reports whether the option with the given key was given explicitly.
func (o *CLIOptions) Set(key string) bool {
	opt, ok := Lookup(key)
	if !ok || o.fs == nil {
		return false
	}
	return o.fs.Changed(opt.Flag)
}

// Value returns the CLI value of an explicitly set option.
func (o *CLIOptions) Value(key string) (any, bool) {
	if !o.Set(key) {
		return nil, false
	}
	opt, _ := Lookup(key)
	switch opt.Kind {
	case KindBool:
		v, _ := o.fs.GetBool(opt.Flag)
		return v, true
	case KindInt:
		v, _ := o.fs.GetCount(opt.Flag)
		return v, true
	case KindString:
		v, _ := o.fs.GetString(opt.Flag)
		return v, true
	case KindEnum:
		return o.enums[opt.Flag].value, true
	case KindList:
		v, _ := o.fs.GetStringArray(opt.Flag)
		return v, true
	case KindMapping:
		return o.mappings[opt.Flag].toMap(), true
	case KindWriteSet:
		return o.write.Rules(), true
	}
	return nil, false
}

// WriteList returns the accumulated --write entries, empty if --write was not
// given.
func (o *CLIOptions) WriteList() []string {
	if o.write == nil {
		return nil
	}
	return o.write.Rules()
}

// NewFlagSet returns a flag set describing every option. It is used for help
// output; ParseArgs builds its own.
func NewFlagSet(name string) *pflag.FlagSet {
	fs, _ := newFlagSet(name)
	return fs
}

func newFlagSet(name string) (*pflag.FlagSet, *CLIOptions) {
	opts := &CLIOptions{
		enums:    make(map[string]*enumValue),
		mappings: make(map[string]*mappingValue),
	}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringVarP(&opts.ConfigFile, configFileFlag, "c", "", "specify configuration file to use")
	for _, opt := range Options {
		switch opt.Kind {
		case KindBool:
			fs.BoolP(opt.Flag, opt.Short, false, opt.Usage)
		case KindInt:
			fs.CountP(opt.Flag, opt.Short, opt.Usage)
		case KindString:
			fs.StringP(opt.Flag, opt.Short, "", opt.Usage)
		case KindEnum:
			v := &enumValue{choices: opt.Choices}
			opts.enums[opt.Flag] = v
			fs.VarP(v, opt.Flag, opt.Short, fmt.Sprintf("%s (%s)", opt.Usage, strings.Join(opt.Choices, ", ")))
		case KindList:
			fs.StringArrayP(opt.Flag, opt.Short, nil, opt.Usage)
		case KindMapping:
			v := &mappingValue{}
			opts.mappings[opt.Flag] = v
			fs.VarP(v, opt.Flag, opt.Short, opt.Usage)
		case KindWriteSet:
			opts.write = &writeListValue{}
			fs.VarP(opts.write, opt.Flag, opt.Short, opt.Usage)
			fs.Lookup(opt.Flag).NoOptDefVal = WriteAll
		}
	}
	opts.fs = fs
	return fs, opts
}

// ParseArgs parses argv. workDir is used to decide whether the token after a
// bare --write names an existing path, in which case it is kept as a
// lintable rather than taken as the --write value.
func ParseArgs(args []string, workDir string) (*CLIOptions, error) {
	fs, opts := newFlagSet("playlint")
	if err := fs.Parse(bindWriteValues(args, workDir)); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, &CLISyntaxError{Token: offendingToken(err), Err: err}
	}
	opts.Lintables = fs.Args()
	return opts, nil
}

// pflag reports the bad token only inside its messages.
var tokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`unknown flag: (\S+)`),
	regexp.MustCompile(`unknown shorthand flag: '.' in (\S+)`),
	regexp.MustCompile(`invalid argument "(.*?)" for`),
	regexp.MustCompile(`flag needs an argument: (?:'.' in )?(\S+)`),
	regexp.MustCompile(`bad flag syntax: (\S+)`),
}

func offendingToken(err error) string {
	msg := err.Error()
	for _, re := range tokenPatterns {
		if m := re.FindStringSubmatch(msg); m != nil {
			return m[1]
		}
	}
	return ""
}

// bindWriteValues rewrites "--write VALUE" to "--write=VALUE" when VALUE
// belongs to the --write vocabulary. Without the rewrite the optional value
// would never be consumed.
func bindWriteValues(args []string, workDir string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if arg == "--write" && i+1 < len(args) && takesWriteValue(args[i+1], workDir) {
			out = append(out, "--write="+args[i+1])
			i++
			continue
		}
		out = append(out, arg)
	}
	return out
}

func takesWriteValue(tok, workDir string) bool {
	if tok == WriteAll || tok == WriteNone {
		return true
	}
	if strings.HasPrefix(tok, "-") || !looksLikeWriteValue(tok) {
		return false
	}
	return !pathExists(tok, workDir)
}

func pathExists(p, workDir string) bool {
	if !filepath.IsAbs(p) {
		p = filepath.Join(workDir, p)
	}
	_, err := os.Stat(p)
	return err == nil
}

// explicitConfigFile scans argv for -c/--config-file without parsing the
// rest, so the file can be loaded before argv is validated. It follows
// pflag's grammar: short flags may be combined (-vc FILE), and the value of a
// flag that takes one is never read as a flag itself (--exclude -c).
func explicitConfigFile(args []string) (string, bool) {
	fs, _ := newFlagSet("playlint")
	var (
		path  string
		found bool
	)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return path, found
		case strings.HasPrefix(arg, "--"):
			name, value, hasValue := strings.Cut(arg[2:], "=")
			flag := fs.Lookup(name)
			if flag == nil {
				continue
			}
			if !hasValue && flag.NoOptDefVal == "" && i+1 < len(args) {
				value, hasValue = args[i+1], true
				i++
			}
			if name == configFileFlag && hasValue {
				path, found = value, true
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			value, ok, consumed := scanShorthands(fs, arg[1:], args[i+1:])
			if ok {
				path, found = value, true
			}
			i += consumed
		}
	}
	return path, found
}

// scanShorthands walks one run of combined short flags. It returns the -c
// value if the run sets it and how many following args were consumed as a
// flag value.
func scanShorthands(fs *pflag.FlagSet, run string, rest []string) (string, bool, int) {
	for j := 0; j < len(run); j++ {
		flag := fs.ShorthandLookup(run[j : j+1])
		if flag == nil {
			return "", false, 0
		}
		tail := run[j+1:]
		var (
			value    string
			consumed int
		)
		switch {
		case len(tail) > 1 && tail[0] == '=':
			value = tail[1:]
		case flag.NoOptDefVal != "":
			continue
		case tail != "":
			value = tail
		case len(rest) > 0:
			value, consumed = rest[0], 1
		default:
			return "", false, 0
		}
		if flag.Name == configFileFlag {
			return value, true, consumed
		}
		return "", false, consumed
	}
	return "", false, 0
}

// enumValue is a string flag restricted to a fixed set of choices.
type enumValue struct {
	choices []string
	value   string
}

func (e *enumValue) String() string { return e.value }

func (e *enumValue) Set(s string) error {
	if !slices.Contains(e.choices, s) {
		return fmt.Errorf("must be one of %s", strings.Join(e.choices, ", "))
	}
	e.value = s
	return nil
}

func (e *enumValue) Type() string { return "string" }

// mappingValue collects repeated KEY=VALUE flags.
type mappingValue struct {
	keys   []string
	values map[string]string
}

func (m *mappingValue) String() string {
	parts := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		parts = append(parts, k+"="+m.values[k])
	}
	return strings.Join(parts, ",")
}

func (m *mappingValue) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("expected KEY=VALUE, got %q", s)
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, seen := m.values[key]; !seen {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return nil
}

func (m *mappingValue) Type() string { return "KEY=VALUE" }

func (m *mappingValue) toMap() map[string]any {
	out := make(map[string]any, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// writeListValue accumulates --write occurrences, splitting on commas.
type writeListValue struct {
	rules []string
}

func (w *writeListValue) String() string { return strings.Join(w.rules, ",") }

func (w *writeListValue) Set(s string) error {
	parts := splitWriteValue(s)
	if len(parts) == 0 {
		return fmt.Errorf("empty --write value")
	}
	w.rules = append(w.rules, parts...)
	return nil
}

func (w *writeListValue) Type() string { return "rules" }

func (w *writeListValue) Rules() []string {
	return append([]string(nil), w.rules...)
}
