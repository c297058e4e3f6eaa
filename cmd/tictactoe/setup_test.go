package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/engine"
)

func withFlags(t *testing.T, cfgPath, db, start, level string) {
	t.Helper()
	old := []string{flagConfig, flagDBPath, flagStart, flagLogLevel}
	flagConfig, flagDBPath, flagStart, flagLogLevel = cfgPath, db, start, level
	t.Cleanup(func() {
		flagConfig, flagDBPath, flagStart, flagLogLevel = old[0], old[1], old[2], old[3]
	})
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  starting_player: X\n"), 0o600))
	return path
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	db := filepath.Join(t.TempDir(), "results.db")
	withFlags(t, writeConfig(t), db, "O", "debug")

	cfg, err := loadConfig()

	require.NoError(t, err)
	assert.Equal(t, engine.O, cfg.StartingMark())
	assert.Equal(t, db, cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigRejectsBadFlag(t *testing.T) {
	withFlags(t, writeConfig(t), "", "Z", "")

	_, err := loadConfig()
	assert.ErrorIs(t, err, config.ErrStartingPlayer)
}

func TestOpenStoreDisabledByDefault(t *testing.T) {
	store, err := openStore(config.Default())
	assert.NoError(t, err)
	assert.Nil(t, store)
}

func TestNewLoggerWritesFile(t *testing.T) {
	cfg := config.Default()
	cfg.Log.File = filepath.Join(t.TempDir(), "logs", "tictactoe.log")

	logger, closeLog, err := newLogger(cfg, true)
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, logger.GetLevel())

	logger.Info("hello", "who", "test")
	closeLog()

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "tictactoe")
}
