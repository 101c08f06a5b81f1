package config

// Kind is the value type of an option.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindString
	KindEnum
	KindList
	KindMapping
	KindWriteSet
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindList:
		return "list"
	case KindMapping:
		return "mapping"
	case KindWriteSet:
		return "write-set"
	default:
		return "unknown"
	}
}

// Strategy controls how a file value and a CLI value combine.
type Strategy string

const (
	// StrategyOverride uses the CLI value if set, else the file value, else the default.
	StrategyOverride Strategy = "override"
	// StrategyListUnion starts from the file list and adds CLI entries not already present.
	StrategyListUnion Strategy = "list-union"
	// StrategyListAppend concatenates file entries followed by CLI entries.
	StrategyListAppend Strategy = "list-append"
	// StrategyWriteSet lets any CLI --write occurrence replace the file write_list.
	StrategyWriteSet Strategy = "write-set-merge"
)

// Option describes one configuration field.
type Option struct {
	Name     string // config file key
	Flag     string // long flag name
	Short    string
	Kind     Kind
	Strategy Strategy
	Path     bool // values are filesystem paths and get normalized
	Choices  []string
	Usage    string
}

// Option keys.
const (
	KeyExcludePaths        = "exclude_paths"
	KeyRulesDir            = "rulesdir"
	KeyUseDefaultRules     = "use_default_rules"
	KeyTags                = "tags"
	KeySkipTags            = "skip_tags"
	KeyWarnList            = "warn_list"
	KeyEnableList          = "enable_list"
	KeyMockModules         = "mock_modules"
	KeyMockRoles           = "mock_roles"
	KeyWriteList           = "write_list"
	KeyExtraVars           = "extra_vars"
	KeyVerbosity           = "verbosity"
	KeyQuiet               = "quiet"
	KeyParseable           = "parseable"
	KeyStrict              = "strict"
	KeyDisplayRelativePath = "display_relative_path"
	KeyOffline             = "offline"
	KeyProfile             = "profile"
	KeyFormat              = "format"
	KeyProjectDir          = "project_dir"
	KeySarifFile           = "sarif_file"
)

// Profiles accepted by --profile.
var Profiles = []string{"min", "basic", "moderate", "safety", "shared", "production"}

// Formats accepted by --format.
var Formats = []string{"rich", "plain", "md", "json", "codeclimate", "quiet", "pep8", "sarif"}

// Options is the full set of known options. It drives the flag set, the
// config file schema and the merge.
var Options = []Option{
	{Name: KeyExcludePaths, Flag: "exclude", Kind: KindList, Strategy: StrategyListAppend, Path: true,
		Usage: "path to directories or files to skip (repeatable)"},
	{Name: KeyRulesDir, Flag: "rulesdir", Short: "r", Kind: KindList, Strategy: StrategyListAppend, Path: true,
		Usage: "additional rules directory (repeatable); replaces the default rules unless -R is given"},
	{Name: KeyUseDefaultRules, Flag: "use-default-rules", Short: "R", Kind: KindBool, Strategy: StrategyOverride,
		Usage: "keep the default rules when using -r"},
	{Name: KeyTags, Flag: "tags", Short: "t", Kind: KindList, Strategy: StrategyListUnion,
		Usage: "only check rules whose id or tags match (repeatable)"},
	{Name: KeySkipTags, Flag: "skip-tags", Short: "x", Kind: KindList, Strategy: StrategyListUnion,
		Usage: "only check rules whose id or tags do not match (repeatable)"},
	{Name: KeyWarnList, Flag: "warn-list", Short: "w", Kind: KindList, Strategy: StrategyListUnion,
		Usage: "only warn about these rules (repeatable)"},
	{Name: KeyEnableList, Flag: "enable-list", Kind: KindList, Strategy: StrategyListUnion,
		Usage: "activate optional rules by id or tag (repeatable)"},
	{Name: KeyMockModules, Flag: "mock-modules", Kind: KindList, Strategy: StrategyListUnion,
		Usage: "module names to mock during syntax checks (repeatable)"},
	{Name: KeyMockRoles, Flag: "mock-roles", Kind: KindList, Strategy: StrategyListUnion,
		Usage: "role names to mock during syntax checks (repeatable)"},
	{Name: KeyWriteList, Flag: "write", Kind: KindWriteSet, Strategy: StrategyWriteSet,
		Usage: "apply fixes: all, none, or a comma-separated list of rule ids or tags (repeatable)"},
	{Name: KeyExtraVars, Flag: "extra-vars", Short: "e", Kind: KindMapping, Strategy: StrategyOverride,
		Usage: "extra variable as KEY=VALUE (repeatable)"},
	{Name: KeyVerbosity, Flag: "verbose", Short: "v", Kind: KindInt, Strategy: StrategyOverride,
		Usage: "increase verbosity (repeatable)"},
	{Name: KeyQuiet, Flag: "quiet", Short: "q", Kind: KindBool, Strategy: StrategyOverride,
		Usage: "quieter output"},
	{Name: KeyParseable, Flag: "parseable", Short: "p", Kind: KindBool, Strategy: StrategyOverride,
		Usage: "parseable output, same as '-f pep8'"},
	{Name: KeyStrict, Flag: "strict", Short: "s", Kind: KindBool, Strategy: StrategyOverride,
		Usage: "return non-zero exit code on warnings as well as errors"},
	{Name: KeyDisplayRelativePath, Flag: "show-relpath", Kind: KindBool, Strategy: StrategyOverride,
		Usage: "display path relative to the working directory"},
	{Name: KeyOffline, Flag: "offline", Kind: KindBool, Strategy: StrategyOverride,
		Usage: "disable installation of requirements"},
	{Name: KeyProfile, Flag: "profile", Short: "P", Kind: KindEnum, Strategy: StrategyOverride, Choices: Profiles,
		Usage: "rule profile to apply"},
	{Name: KeyFormat, Flag: "format", Short: "f", Kind: KindEnum, Strategy: StrategyOverride, Choices: Formats,
		Usage: "output format"},
	{Name: KeyProjectDir, Flag: "project-dir", Kind: KindString, Strategy: StrategyOverride, Path: true,
		Usage: "location of the project root"},
	{Name: KeySarifFile, Flag: "sarif-file", Kind: KindString, Strategy: StrategyOverride, Path: true,
		Usage: "write SARIF output to this file"},
}

// Lookup returns the option with the given config file key.
func Lookup(name string) (Option, bool) {
	for _, opt := range Options {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}

// Default values.
const (
	DefaultFormat  = "rich"
	NullConfigFile = "/dev/null"
)

// DefaultSearchPaths are probed in order, relative to the working directory,
// when no -c/--config-file is given.
var DefaultSearchPaths = []string{
	".ansible-lint",
	".ansible-lint.yml",
	".ansible-lint.yaml",
	".config/ansible-lint.yml",
	".config/ansible-lint.yaml",
}

// DefaultWarnList returns the rules that only warn unless configured otherwise.
func DefaultWarnList() []string {
	return []string{"experimental"}
}
