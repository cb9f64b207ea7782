// bubbleburst is a same-colour bubble popping game for the terminal.
//
// Usage:
//
//	bubbleburst list                  - List difficulties and board sizes
//	bubbleburst play [difficulty]     - Play a round
//	bubbleburst menu                  - Pick a difficulty interactively
//	bubbleburst serve                 - Start SSH server for remote play
//	bubbleburst scores [difficulty]   - Show the leaderboard
//	bubbleburst config                - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for a reproducible board
//	--db <path>          - Set database path (default: ~/.bubbleburst/scores.db)
//	--config <path>      - Load a custom YAML config
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubbleburst/internal/config"
	"github.com/vovakirdan/bubbleburst/internal/games/bubbleburst"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagPlayer   string

	// Loaded by the persistent pre-run hook
	gameConfig config.BubbleburstConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bubbleburst",
	Short: "Bubbleburst - pop same-coloured bubbles in your terminal",
	Long: `Bubbleburst is a terminal puzzle game. Pop groups of two or more
touching bubbles of the same colour; the rest fall down and slide over to
fill the gaps. Bigger groups score more. The round ends when no group is
left, or with a bonus feeling when the board is empty.

Available commands:
  list     - Show difficulties and board sizes
  play     - Play a round directly
  menu     - Interactive difficulty picker
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  config   - Print the effective configuration

Examples:
  bubbleburst play
  bubbleburst play hard
  bubbleburst menu
  bubbleburst serve --ssh :2222
  bubbleburst scores easy`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bubbleburst/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name for the leaderboard (default: $USER)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the configuration and hands it to the game package before
// any game is created.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, err := config.LoadBubbleburst(flagConfig)
	if err != nil {
		return err
	}
	gameConfig = cfg
	bubbleburst.SetConfig(cfg)

	// The serve command logs to stderr; interactive commands own the terminal.
	logger, err := newLogger(cmd.Name() == serveCmd.Name())
	if err != nil {
		return err
	}
	bubbleburst.SetLogger(logger)
	appLogger = logger

	logger.Debug("config loaded", "path", flagConfig, "compaction", cfg.Board.Compaction)
	return nil
}

// playerName returns the --player flag or the current user name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return os.Getenv("USERNAME")
}
