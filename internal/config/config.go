// Package config provides YAML-based configuration loading and difficulty
// presets for Bubbleburst.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/bubbleburst/internal/board"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// BubbleburstConfig contains all configuration for the game.
type BubbleburstConfig struct {
	Board        BoardConfig                      `yaml:"board"`
	Presentation PresentationConfig               `yaml:"presentation"`
	Difficulties map[DifficultyPreset]BoardPreset `yaml:"difficulties"`
	Leaderboard  LeaderboardConfig                `yaml:"leaderboard"`
}

// BoardConfig holds rules shared by every difficulty.
type BoardConfig struct {
	Compaction string `yaml:"compaction"` // "right" or "left"
}

// PresentationConfig controls playback pacing, in simulation ticks.
type PresentationConfig struct {
	PopDelayTicks int    `yaml:"pop_delay_ticks"` // delay between BFS depth layers
	FallTicks     int    `yaml:"fall_ticks"`      // duration of the whole fall phase
	SlideTicks    int    `yaml:"slide_ticks"`     // duration of the whole slide phase
	Easing        string `yaml:"easing"`          // tween easing name
}

// BoardPreset defines the board for one difficulty.
type BoardPreset struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Palette int `yaml:"palette"` // number of colours
}

// LeaderboardConfig defines leaderboard behaviour.
type LeaderboardConfig struct {
	Size int `yaml:"size"` // entries kept per difficulty
}

// Easings lists the accepted presentation.easing values.
var Easings = []string{"linear", "out_quad", "out_cubic", "out_bounce"}

// Preset returns the board preset for a difficulty.
func (c BubbleburstConfig) Preset(d DifficultyPreset) (BoardPreset, error) {
	p, ok := c.Difficulties[d]
	if !ok {
		return BoardPreset{}, fmt.Errorf("no preset for difficulty %q: %w", d, ErrInvalidConfig)
	}
	return p, nil
}

// Compaction returns the parsed compaction direction.
func (c BubbleburstConfig) Compaction() (board.Compaction, error) {
	dir, err := board.ParseCompaction(c.Board.Compaction)
	if err != nil {
		return board.CompactRight, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return dir, nil
}

// Validate checks that the configuration can drive a game.
func (c BubbleburstConfig) Validate() error {
	if _, err := c.Compaction(); err != nil {
		return err
	}

	p := c.Presentation
	if p.PopDelayTicks < 0 || p.FallTicks <= 0 || p.SlideTicks <= 0 {
		return fmt.Errorf("presentation ticks must be positive (pop delay may be 0): %w", ErrInvalidConfig)
	}
	if !validEasing(p.Easing) {
		return fmt.Errorf("unknown easing %q: %w", p.Easing, ErrInvalidConfig)
	}

	for _, d := range AllDifficulties() {
		preset, err := c.Preset(d)
		if err != nil {
			return err
		}
		if preset.Width <= 0 || preset.Height <= 0 {
			return fmt.Errorf("difficulty %s: board %dx%d: %w", d, preset.Width, preset.Height, ErrInvalidConfig)
		}
		if preset.Palette < 2 || preset.Palette > board.MaxPalette {
			return fmt.Errorf("difficulty %s: palette %d not in 2..%d: %w", d, preset.Palette, board.MaxPalette, ErrInvalidConfig)
		}
	}

	if c.Leaderboard.Size <= 0 {
		return fmt.Errorf("leaderboard size %d: %w", c.Leaderboard.Size, ErrInvalidConfig)
	}
	return nil
}

func validEasing(name string) bool {
	for _, e := range Easings {
		if e == name {
			return true
		}
	}
	return false
}
