// Package redact masks secrets in extra_vars before a configuration is
// displayed.
//
// A value is masked when its key names a secret (password, token, api_key,
// vault_password and similar) or when the value itself has a well-known
// secret shape: AWS access key IDs, JWTs, private key blocks, bearer tokens,
// GitHub and Slack tokens.
package redact
