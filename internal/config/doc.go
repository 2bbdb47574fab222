// Package config manages auto-updater settings.
//
// It handles:
//   - The fixed pipeline defaults (working directory, script, remote, branch)
//   - Repository-specific overrides stored under .git/
//   - Environment overrides for the working directory and log file
package config
