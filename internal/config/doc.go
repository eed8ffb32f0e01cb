// Package config provides 12-factor configuration management for vterm.
//
// Configuration is resolved in three layers, later layers winning:
//   - Built-in defaults
//   - An optional TOML config file (~/.vtermrc or --config)
//   - Environment variables (VTERM_* prefix)
//
// Configuration Sections:
//   - State: snapshot directory and file names
//   - Shell: history cap and prompt override
//   - Logging: log level and output format
//
// Example Usage:
//
//	cfg := config.LoadOrDefault(config.DefaultFilePath())
//	fmt.Println(cfg.State.FilesystemPath())
//
// Environment Variables:
//   - VTERM_STATE_DIR, VTERM_FS_FILE, VTERM_ENV_FILE
//   - VTERM_HISTORY_MAX, VTERM_PROMPT
//   - VTERM_LOG_LEVEL, VTERM_LOG_DEV
package config
