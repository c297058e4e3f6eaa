package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

// loadConfig reads the config file and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagStart != "" {
		cfg.Game.StartingPlayer = flagStart
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	return cfg, cfg.Validate()
}

// newLogger builds the application logger. Interactive sessions log to
// log.file only, since stderr shares the terminal with the board.
// The returned function closes the log file.
func newLogger(cfg config.Config, interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case cfg.Log.File != "":
		if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tictactoe",
		Level:           level,
	})
	return logger, closeFn, nil
}

// openStore opens the result history, or returns nil when it is disabled.
func openStore(cfg config.Config) (*storage.Store, error) {
	if cfg.Storage.Path == "" {
		return nil, nil
	}
	return storage.Open(cfg.Storage.Path)
}

// sessionName is the player name recorded with local results.
func sessionName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
