// tictactoe is a two-player tic-tac-toe board for the terminal.
//
// Usage:
//
//	tictactoe                 - Play on this terminal (same as "play")
//	tictactoe play            - Play on this terminal
//	tictactoe serve           - Start SSH server for remote play
//	tictactoe history         - Show recorded results
//	tictactoe config          - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.tictactoe/config.yaml)
//	--db <path>         - Result history database (overrides storage.path)
//	--start <X|O>       - Who opens the first game
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagStart    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Tic-Tac-Toe - two players, one terminal",
	Long: `A hot-seat tic-tac-toe board for the terminal.

Two players share one keyboard and take turns placing X and O.
The session keeps a running score; a win adds a point, a tie adds none.

Available commands:
  play     - Play on this terminal (default)
  serve    - Start SSH server for remote play
  history  - Show recorded results
  config   - Print the default configuration

Examples:
  tictactoe
  tictactoe --start O
  tictactoe --db ~/.tictactoe/results.db
  tictactoe serve --ssh :2222
  tictactoe history`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to result history database (empty = from config)")
	rootCmd.PersistentFlags().StringVar(&flagStart, "start", "", "Starting player: X or O (empty = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (empty = from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
