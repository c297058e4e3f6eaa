package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded results",
	Long: `Display the most recent finished games and overall totals.

History is only kept when storage.path is set in the config or
--db is given. The running score of a session is never restored
from it.

Examples:
  tictactoe history --db ~/.tictactoe/results.db
  tictactoe history --limit 50
  tictactoe history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
}

var errHistoryDisabled = errors.New("history is disabled: set storage.path in the config or pass --db")

func runHistory(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening result history: %v\n", err)
		os.Exit(1)
	}
	if store == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", errHistoryDisabled)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	results, err := store.RecentResults(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Games")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  %-5s  %-7s  %-6s  %-5s  %-12s  %s\n", "#", "Result", "Opened", "Moves", "Player", "Date")
	fmt.Printf("  %-5s  %-7s  %-6s  %-5s  %-12s  %s\n", "-", "------", "------", "-----", "------", "----")

	for _, r := range results {
		fmt.Printf("  %-5d  %-7s  %-6s  %-5d  %-12s  %s\n",
			r.ID, resultText(r.Winner), r.Starting, r.Moves, r.Session,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	totals, err := store.Totals()
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  X wins: %d  O wins: %d  Ties: %d\n",
			totals.Games, totals.WinsX, totals.WinsO, totals.Ties)
	}
}

func resultText(winner string) string {
	if winner == "" {
		return "tie"
	}
	return winner + " won"
}
