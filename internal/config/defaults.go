package config

import (
	_ "embed"
)

//go:embed defaults/bubbleburst.yaml
var defaultBubbleburstYAML []byte

// DefaultBubbleburstConfig returns the built-in configuration. It matches
// the embedded defaults/bubbleburst.yaml.
func DefaultBubbleburstConfig() BubbleburstConfig {
	return BubbleburstConfig{
		Board: BoardConfig{
			Compaction: "right",
		},
		Presentation: PresentationConfig{
			PopDelayTicks: 3,
			FallTicks:     4,
			SlideTicks:    6,
			Easing:        "out_quad",
		},
		Difficulties: map[DifficultyPreset]BoardPreset{
			DifficultyEasy:   {Width: 8, Height: 8, Palette: 3},
			DifficultyMedium: {Width: 10, Height: 10, Palette: 4},
			DifficultyHard:   {Width: 12, Height: 12, Palette: 5},
		},
		Leaderboard: LeaderboardConfig{
			Size: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBubbleburstYAML
}
