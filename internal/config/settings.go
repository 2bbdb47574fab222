package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults for the pipeline. The working directory, script and remote are fixed
// for the deployment this tool was written for.
const (
	DefaultWorkDir         = "/opt/auto_updater"
	DefaultInterpreter     = "python3"
	DefaultScript          = "iptv-test.py"
	DefaultRemote          = "origin"
	DefaultBranch          = "main"
	DefaultMessagePrefix   = "Auto update: "
	DefaultTimestampLayout = "2006-01-02 15:04:05"
)

// Environment variables read by Load
const (
	EnvWorkDir = "AUTO_UPDATER_DIR"
	EnvLogFile = "AUTO_UPDATER_LOG_FILE"
)

// repoConfigName is the name of the override file inside the .git directory
const repoConfigName = ".auto_updater_config"

// Settings holds everything the pipeline needs to run
type Settings struct {
	WorkDir         string
	Interpreter     string
	Script          string
	Remote          string
	Branch          string
	MessagePrefix   string
	TimestampLayout string
	LogFile         string
}

// RepoConfig represents the optional per-repository overrides
type RepoConfig struct {
	Remote        *string `json:"remote,omitempty"`
	Branch        *string `json:"branch,omitempty"`
	Interpreter   *string `json:"interpreter,omitempty"`
	Script        *string `json:"script,omitempty"`
	MessagePrefix *string `json:"messagePrefix,omitempty"`
}

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		WorkDir:         DefaultWorkDir,
		Interpreter:     DefaultInterpreter,
		Script:          DefaultScript,
		Remote:          DefaultRemote,
		Branch:          DefaultBranch,
		MessagePrefix:   DefaultMessagePrefix,
		TimestampLayout: DefaultTimestampLayout,
	}
}

// Load returns the default settings with environment and repository overrides applied.
// A working directory that is missing or not a directory is not an error here;
// repository overrides are skipped and the pipeline reports it.
func Load() (Settings, error) {
	settings := Default()

	if dir := os.Getenv(EnvWorkDir); dir != "" {
		settings.WorkDir = dir
	}
	settings.LogFile = os.Getenv(EnvLogFile)

	if info, err := os.Stat(settings.WorkDir); err != nil || !info.IsDir() {
		return settings, nil
	}

	cfg, err := GetRepoConfig(settings.WorkDir)
	if err != nil {
		return Settings{}, err
	}
	cfg.apply(&settings)

	return settings, nil
}

// RepoConfigPath returns the path of the override file for a working directory
func RepoConfigPath(workDir string) string {
	return filepath.Join(workDir, ".git", repoConfigName)
}

// GetRepoConfig reads the repository overrides. A missing file yields an empty config.
func GetRepoConfig(workDir string) (*RepoConfig, error) {
	data, err := os.ReadFile(RepoConfigPath(workDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &RepoConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read repo config: %w", err)
	}

	var cfg RepoConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &cfg, nil
}

// SaveRepoConfig writes the repository overrides
func SaveRepoConfig(workDir string, cfg *RepoConfig) error {
	configJSON, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal repo config: %w", err)
	}

	return os.WriteFile(RepoConfigPath(workDir), configJSON, 0600)
}

func (c *RepoConfig) apply(s *Settings) {
	setIfPresent(&s.Remote, c.Remote)
	setIfPresent(&s.Branch, c.Branch)
	setIfPresent(&s.Interpreter, c.Interpreter)
	setIfPresent(&s.Script, c.Script)
	// An empty prefix is a valid override
	if c.MessagePrefix != nil {
		s.MessagePrefix = *c.MessagePrefix
	}
}

func setIfPresent(dst *string, value *string) {
	if value != nil && *value != "" {
		*dst = *value
	}
}

// ScriptPath returns the absolute path of the data-refresh script
func (s Settings) ScriptPath() string {
	if filepath.IsAbs(s.Script) {
		return s.Script
	}
	return filepath.Join(s.WorkDir, s.Script)
}
