// Package config provides YAML-based configuration loading for the game and
// its front ends.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/engine"
)

// Validation errors.
var (
	ErrStartingPlayer = errors.New("starting_player must be X or O")
	ErrColor          = errors.New("unknown color")
	ErrLogLevel       = errors.New("unknown log level")
)

// Config is the full application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Theme   ThemeConfig   `yaml:"theme"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// GameConfig holds engine settings.
type GameConfig struct {
	StartingPlayer string `yaml:"starting_player"`
}

// ThemeConfig names the colors used to draw the board.
type ThemeConfig struct {
	X      string `yaml:"x"`
	O      string `yaml:"o"`
	Cursor string `yaml:"cursor"`
	Win    string `yaml:"win"`
	Grid   string `yaml:"grid"`
}

// StorageConfig controls result history.
type StorageConfig struct {
	Path string `yaml:"path"` // Empty disables history
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// SSHConfig controls the serve command.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Theme is a resolved ThemeConfig.
type Theme struct {
	X      core.Color
	O      core.Color
	Cursor core.Color
	Win    core.Color
	Grid   core.Color
}

// Validate checks values that YAML cannot type-check.
func (c Config) Validate() error {
	if _, ok := engine.ParseMark(c.Game.StartingPlayer); !ok {
		return fmt.Errorf("config: %w, got %q", ErrStartingPlayer, c.Game.StartingPlayer)
	}
	if _, err := c.Theme.Resolve(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w %q", ErrLogLevel, c.Log.Level)
	}
	return nil
}

// StartingMark returns the configured opener, falling back to X.
func (c Config) StartingMark() engine.Mark {
	if m, ok := engine.ParseMark(c.Game.StartingPlayer); ok {
		return m
	}
	return engine.X
}

// Resolve converts color names to core colors.
func (t ThemeConfig) Resolve() (Theme, error) {
	var th Theme
	fields := []struct {
		name string
		val  string
		dst  *core.Color
	}{
		{"x", t.X, &th.X},
		{"o", t.O, &th.O},
		{"cursor", t.Cursor, &th.Cursor},
		{"win", t.Win, &th.Win},
		{"grid", t.Grid, &th.Grid},
	}
	for _, f := range fields {
		c, ok := core.ParseColor(f.val)
		if !ok {
			return th, fmt.Errorf("config: theme.%s: %w %q", f.name, ErrColor, f.val)
		}
		*f.dst = c
	}
	return th, nil
}
