// Package output renders a resolved playlint configuration.
//
// Four formats are supported:
//   - yaml     : the effective config in config file form (default)
//   - json     : the same document as JSON
//   - text     : one line per option with the source of its value
//   - markdown : a table suited to issue reports
//
// Use [GetWriter] to obtain a [Writer] for a format string, then call
// [Writer.Write] with an [io.Writer] and a [*config.Config]. Secret-looking
// extra_vars are masked in every format.
package output
