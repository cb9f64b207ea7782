package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bubbleburst/internal/config"
	"github.com/vovakirdan/bubbleburst/internal/core"
	"github.com/vovakirdan/bubbleburst/internal/games/bubbleburst"
	"github.com/vovakirdan/bubbleburst/internal/platform/tui"
	"github.com/vovakirdan/bubbleburst/internal/registry"
	"github.com/vovakirdan/bubbleburst/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play a round",
	Long: `Start a round at the given difficulty (default: medium).

Controls:
  Arrows/WASD/HJKL  - Move the cursor
  Mouse             - Hover to aim, click to pop
  Enter/Space       - Pop the highlighted group
  ?                 - Jump to the largest group
  P                 - Pause
  R                 - New board (after the round ends)
  B/Esc             - Back (when paused or finished)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulties:
  easy    - small board, few colours
  medium  - medium board
  hard    - large board, more colours

Examples:
  bubbleburst play
  bubbleburst play hard
  bubbleburst play --difficulty easy --seed 42
  bubbleburst play --config ./my-bubbleburst.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
}

// resolveDifficulty picks the difficulty from the argument, the flag or the default.
func resolveDifficulty(args []string) (config.DifficultyPreset, error) {
	name := flagDifficulty
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		return config.DifficultyMedium, nil
	}
	return config.ParseDifficulty(name)
}

// terminalConfig builds the runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database; a failure only disables scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		appLogger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// gameOptions returns the model options shared by play and menu.
func gameOptions() tui.Options {
	return tui.Options{
		Player:          playerName(),
		LeaderboardSize: gameConfig.Leaderboard.Size,
		Logger:          appLogger,
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	difficulty, err := resolveDifficulty(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(bubbleburst.GameID(difficulty))
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, terminalConfig(), gameOptions()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
