package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/bubbleburst/internal/board"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode(DefaultYAML())
	if err != nil {
		t.Fatalf("decode(DefaultYAML()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBubbleburstConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultBubbleburstConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  compaction: left\nleaderboard:\n  size: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBubbleburst(path)
	if err != nil {
		t.Fatalf("LoadBubbleburst() failed: %v", err)
	}

	dir, err := cfg.Compaction()
	if err != nil {
		t.Fatalf("Compaction() failed: %v", err)
	}
	if dir != board.CompactLeft {
		t.Errorf("Compaction() = %v, expected left", dir)
	}
	if cfg.Leaderboard.Size != 3 {
		t.Errorf("Leaderboard.Size = %d, expected 3", cfg.Leaderboard.Size)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Presentation.FallTicks != DefaultBubbleburstConfig().Presentation.FallTicks {
		t.Errorf("Presentation.FallTicks = %d, expected default", cfg.Presentation.FallTicks)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBubbleburst(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBubbleburst(bad); err == nil {
		t.Error("Expected parse error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  compaction: diagonal\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBubbleburst(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BubbleburstConfig)
	}{
		{"unknown compaction", func(c *BubbleburstConfig) { c.Board.Compaction = "up" }},
		{"zero fall ticks", func(c *BubbleburstConfig) { c.Presentation.FallTicks = 0 }},
		{"negative pop delay", func(c *BubbleburstConfig) { c.Presentation.PopDelayTicks = -1 }},
		{"unknown easing", func(c *BubbleburstConfig) { c.Presentation.Easing = "wobble" }},
		{"missing preset", func(c *BubbleburstConfig) { delete(c.Difficulties, DifficultyHard) }},
		{"zero width", func(c *BubbleburstConfig) {
			c.Difficulties[DifficultyEasy] = BoardPreset{Width: 0, Height: 5, Palette: 3}
		}},
		{"palette too small", func(c *BubbleburstConfig) {
			c.Difficulties[DifficultyMedium] = BoardPreset{Width: 5, Height: 5, Palette: 1}
		}},
		{"palette too large", func(c *BubbleburstConfig) {
			c.Difficulties[DifficultyMedium] = BoardPreset{Width: 5, Height: 5, Palette: board.MaxPalette + 1}
		}},
		{"empty leaderboard", func(c *BubbleburstConfig) { c.Leaderboard.Size = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBubbleburstConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"easy", DifficultyEasy, false},
		{"Medium", DifficultyMedium, false},
		{"normal", DifficultyMedium, false},
		{" h ", DifficultyHard, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
