// Package logging builds the log/slog logger used by playlint.
//
// Level and format come from PLAYLINT_LOG_LEVEL and PLAYLINT_LOG_FORMAT
// ([FromEnv]); the cli lowers the level for each -v given.
package logging
