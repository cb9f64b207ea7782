package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubbleburst/internal/config"
	"github.com/vovakirdan/bubbleburst/internal/games/bubbleburst"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulties",
	Long:  `Shows every difficulty with its board size and number of colours.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	fmt.Println("Difficulties:")
	fmt.Println()
	fmt.Printf("  %-8s  %-20s  %-7s  %s\n", "Name", "ID", "Board", "Colours")
	fmt.Printf("  %-8s  %-20s  %-7s  %s\n", "----", "--", "-----", "-------")

	for _, d := range config.AllDifficulties() {
		preset, err := gameConfig.Preset(d)
		if err != nil {
			return err
		}
		fmt.Printf("  %-8s  %-20s  %-7s  %d\n",
			d, bubbleburst.GameID(d), fmt.Sprintf("%dx%d", preset.Width, preset.Height), preset.Palette)
	}

	fmt.Println()
	fmt.Println("Run 'bubbleburst play <name>' to play.")
	return nil
}
