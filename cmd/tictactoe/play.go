package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on this terminal",
	Long: `Start a hot-seat game on this terminal.

Controls:
  Arrows/hjkl  - Move the cursor
  Enter/Space  - Place a mark under the cursor
  1-9          - Place a mark directly (1-3 top row, 7-9 bottom row)
  Mouse click  - Place a mark on the clicked cell
  N            - New game (the score is kept)
  R            - Reset the score
  C            - Change who starts the next game
  H            - Show result history
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Examples:
  tictactoe play
  tictactoe play --start O
  tictactoe play --db ./results.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	theme, err := cfg.Theme.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open result history: %v\n", err)
		logger.Warn("history disabled", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
		if last, lastErr := store.LastResult(); lastErr == nil && last != nil {
			logger.Info("history loaded", "last_game", last.ID, "last_winner", resultText(last.Winner))
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger.Info("starting local game",
		"start", cfg.StartingMark(),
		"history", cfg.Storage.Path != "",
		"size", fmt.Sprintf("%dx%d", width, height),
	)

	runErr := tui.Run(tui.Options{
		Theme:    theme,
		Starting: cfg.StartingMark(),
		Store:    store,
		Logger:   logger,
		Session:  sessionName(),
		Width:    width,
		Height:   height,
		Bell:     os.Stdout,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
