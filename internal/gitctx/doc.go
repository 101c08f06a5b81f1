// Package gitctx answers the few questions playlint asks git: where the work
// tree containing a directory starts, and where its git directory lives.
//
// Both shell out to git. [RepoRoot] seeds project_dir when no source sets it;
// [GitDir] locates the hooks directory for the pre-commit hook.
package gitctx
