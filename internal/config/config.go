package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration.
type Config struct {
	State   StateConfig
	Shell   ShellConfig
	Logging LogConfig
}

// StateConfig holds durable snapshot locations.
//
// No envconfig default tags here: defaults come from Default() so that
// values read from the config file survive envconfig.Process.
type StateConfig struct {
	Dir     string `envconfig:"VTERM_STATE_DIR" toml:"dir"`
	FSFile  string `envconfig:"VTERM_FS_FILE" toml:"fs_file"`
	EnvFile string `envconfig:"VTERM_ENV_FILE" toml:"env_file"`
}

// ShellConfig holds interactive shell settings.
type ShellConfig struct {
	HistoryMax int    `envconfig:"VTERM_HISTORY_MAX" toml:"history_max"`
	Prompt     string `envconfig:"VTERM_PROMPT" toml:"prompt"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"VTERM_LOG_LEVEL" toml:"log_level"`
	Development bool   `envconfig:"VTERM_LOG_DEV" toml:"log_dev"`
}

// FilesystemPath returns the absolute path of the filesystem snapshot.
func (s StateConfig) FilesystemPath() string {
	return filepath.Join(s.Dir, s.FSFile)
}

// EnvironmentPath returns the absolute path of the environment snapshot.
func (s StateConfig) EnvironmentPath() string {
	return filepath.Join(s.Dir, s.EnvFile)
}

// Load resolves configuration: defaults, then the config file at path
// (skipped when path is empty or missing), then VTERM_* environment
// variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No config file is fine.
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads configuration or returns defaults on any failure.
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns built-in defaults.
func Default() *Config {
	return &Config{
		State: StateConfig{
			Dir:     ".",
			FSFile:  "terminal_filesystem.json",
			EnvFile: "terminal_environment.json",
		},
		Shell: ShellConfig{
			HistoryMax: 1000,
		},
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
		},
	}
}

// DefaultFilePath returns the conventional config file location,
// ~/.vtermrc, or empty when the home directory is unknown.
func DefaultFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vtermrc")
}
