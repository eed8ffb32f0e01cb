package main

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/vterm/vterm/internal/commands"
	"github.com/vterm/vterm/internal/config"
	"github.com/vterm/vterm/internal/environ"
	"github.com/vterm/vterm/internal/logging"
	"github.com/vterm/vterm/internal/session"
	"github.com/vterm/vterm/internal/state"
	"github.com/vterm/vterm/internal/vfs"
)

var version = "1.0.0"

func main() {
	configPath := flag.String("config", config.DefaultFilePath(), "Config file (TOML)")
	stateDir := flag.String("state-dir", "", "Directory for snapshot files")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	command := flag.StringP("command", "c", "", "Run a single command line and exit")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("vterm " + version)
		return
	}

	cfg := config.LoadOrDefault(*configPath)
	if *stateDir != "" {
		cfg.State.Dir = *stateDir
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		logger = logging.NewDefault()
	}
	defer logger.Sync()

	fs := vfs.New(state.NewFileStore(cfg.State.FilesystemPath()), logger)
	env := environ.New(state.NewFileStore(cfg.State.EnvironmentPath()), cfg.Shell.HistoryMax, logger)
	registry := commands.NewRegistry()

	sess := session.New(fs, env, registry, logger)
	if cfg.Shell.Prompt != "" {
		sess.SetPrompt(cfg.Shell.Prompt)
	}

	if *command != "" {
		sess.RunLine(*command)
		return
	}

	sess.Run()
}
