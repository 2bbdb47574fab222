// Package git provides the Git operations auto-updater needs.
//
// Mutating operations (add, commit, push) shell out to the git binary so
// that hooks, credentials and remote helpers behave exactly as they do for
// a user at the terminal. Read-only inspection (remotes, branches, commit
// messages) goes through go-git.
//
// This package should be the only place where git commands are executed.
package git
