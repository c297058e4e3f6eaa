package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tictactoe.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded YAML
// and is used if that fails to parse.
func Default() Config {
	return Config{
		Game: GameConfig{
			StartingPlayer: "X",
		},
		Theme: ThemeConfig{
			X:      "bright_red",
			O:      "bright_cyan",
			Cursor: "bright_yellow",
			Win:    "bright_green",
			Grid:   "gray",
		},
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
