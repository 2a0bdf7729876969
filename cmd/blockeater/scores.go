package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/huuugs/block/internal/modes"
	"github.com/huuugs/block/internal/platform/tui"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores for a game mode, or for every mode when none
is given. With --tui an interactive scoreboard opens instead.

Examples:
  blockeater scores
  blockeater scores endless
  blockeater scores time --limit 20
  blockeater scores --tui
  blockeater scores level --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	modeIDs := modes.Order
	if len(args) == 1 {
		if !modes.Registry.Exists(args[0]) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'blockeater modes' to see available modes.")
			os.Exit(1)
		}
		modeIDs = args[:1]
	}

	store := mustOpenStore()
	defer store.Close()

	if flagScoresClear {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a mode")
			os.Exit(1)
		}
		if err := store.ClearScores(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scores for %s cleared.\n", modes.Registry.Title(args[0]))
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		start := ""
		if len(args) == 1 {
			start = args[0]
		}
		if err := tui.RunScoreboard(store, start, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	for i, id := range modeIDs {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, id); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
	}
}

func printScores(store tui.ScoreSource, modeID string) error {
	scores, err := store.TopScores(modeID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", modes.Registry.Title(modeID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %-3s  %-6s  %s\n", "Rank", "Score", "Player", "Lv", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %-3s  %-6s  %s\n", "----", "-----", "------", "--", "----", "----")
	for i, e := range scores {
		player := e.Profile
		if player == "" {
			player = "guest"
		}
		fmt.Printf("  %-4d  %-8d  %-12s  %-3d  %-6s  %s\n",
			i+1, e.Score, player, e.Level,
			fmt.Sprintf("%d:%02d", e.DurationSecs/60, e.DurationSecs%60),
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetModeStats(modeID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.0f  Wins: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.Wins)
	}
	return nil
}
