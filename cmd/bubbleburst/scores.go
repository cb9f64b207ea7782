package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubbleburst/internal/config"
	"github.com/vovakirdan/bubbleburst/internal/games/bubbleburst"
	"github.com/vovakirdan/bubbleburst/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresStats bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show the leaderboard",
	Long: `Display the top scores for a difficulty, or for every difficulty
when none is given.

Examples:
  bubbleburst scores
  bubbleburst scores hard
  bubbleburst scores easy --limit 20
  bubbleburst scores --stats
  bubbleburst scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 0, "Number of entries to show (default: leaderboard size)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the difficulty")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show per-difficulty statistics")
}

func runScores(_ *cobra.Command, args []string) error {
	difficulties := config.AllDifficulties()
	if len(args) > 0 {
		d, err := config.ParseDifficulty(args[0])
		if err != nil {
			return err
		}
		difficulties = []config.DifficultyPreset{d}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if len(args) == 0 {
			return fmt.Errorf("--clear needs a difficulty")
		}
		gameID := bubbleburst.GameID(difficulties[0])
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared %s scores.\n", difficulties[0].Title())
		return nil
	}

	if flagScoresStats {
		return printStats(store, difficulties)
	}

	limit := flagScoresLimit
	if limit <= 0 {
		limit = gameConfig.Leaderboard.Size
	}

	for i, d := range difficulties {
		if i > 0 {
			fmt.Println()
		}
		if err := printLeaderboard(store, d, limit); err != nil {
			return err
		}
	}
	return nil
}

func printLeaderboard(store *storage.Store, d config.DifficultyPreset, limit int) error {
	gameID := bubbleburst.GameID(d)
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", d.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'bubbleburst play %s' to set the first high score!\n", d)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %-5s  %s\n", "Rank", "Player", "Score", "Moves", "Clear", "Date")
	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %-5s  %s\n", "----", "------", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		cleared := ""
		if entry.Cleared {
			cleared = "yes"
		}
		fmt.Printf("  %-4d  %-12s  %-7d  %-5d  %-5s  %s\n",
			i+1, player, entry.Score, entry.Moves, cleared, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printStats(store *storage.Store, difficulties []config.DifficultyPreset) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-8s  %-6s  %-6s  %-6s  %-8s  %s\n", "Level", "Rounds", "Clears", "Best", "Average", "Last played")
	for _, d := range difficulties {
		st, ok := all[bubbleburst.GameID(d)]
		if !ok {
			fmt.Printf("  %-8s  %-6d  %-6d  %-6d  %-8s  %s\n", d.Title(), 0, 0, 0, "-", "never")
			continue
		}
		fmt.Printf("  %-8s  %-6d  %-6d  %-6d  %-8.1f  %s\n",
			d.Title(), st.GamesCount, st.Clears, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
