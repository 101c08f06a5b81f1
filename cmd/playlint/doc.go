// Playlint is the command-line front end of a playbook linter.
//
// It resolves the effective configuration from command-line flags, an
// .ansible-lint config file and built-in defaults, and exits with code 3
// when any of them is invalid.
//
// Usage:
//
//	playlint [flags] [lintable...]     # resolve config and list lintables
//	playlint config show [flags]       # print the effective configuration
//	playlint config path [flags]       # print the config file in use
//	playlint config init               # write a starter .ansible-lint
//	playlint hook install              # block commits on invalid config
package main
