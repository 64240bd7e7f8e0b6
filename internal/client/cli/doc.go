// Package cli provides the interactive CarFlow command-line client.
//
// It wires configuration, the local SQLite store, the agency directory and
// the account store, then runs a REPL on stdin. Outcomes of account
// operations are shown as one-line notifications.
//
// Commands:
//   - login / signup / logout / whoami
//   - user <id>: show a public profile
//   - profile / passwd: edit the signed-in account
//   - reset: request a password reset link
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
