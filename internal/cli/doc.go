// Package cli wires together the Cobra command tree for the playlint binary.
//
// The root command resolves the effective configuration from argv, the
// config file and the defaults, then reports the lintables it would check.
// Subcommands inspect and create configuration (config show, config path,
// config init), manage a git pre-commit hook that validates it, and print the
// version. Configuration failures exit with code 3.
package cli
