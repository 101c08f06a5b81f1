// Package config resolves the effective playlint configuration.
//
// Three sources are merged, per option, following the strategy recorded in
// [Options]:
//  1. Command-line flags ([ParseArgs])
//  2. A YAML config file: -c/--config-file, or the first of
//     [DefaultSearchPaths] that exists ([LoadFile])
//  3. Built-in defaults ([Default])
//
// Override options take the CLI value, then the file value, then the default.
// List options combine the file list with CLI occurrences. The --write option
// is the exception: any CLI occurrence replaces write_list from the file
// ([MergeWriteList]).
//
// Path options are normalized with [NormalizePath]. Values from the file are
// anchored to the file's directory, values from the CLI to the working
// directory, so a config file means the same thing wherever it is used from.
//
// Use [Resolve] or [Resolver.Resolve] to obtain a [Config]. Failures are one
// of [CLISyntaxError], [ConfigNotFoundError], [ConfigParseError] or
// [ConfigSchemaError]; all map to exit code [ExitConfigError].
package config
