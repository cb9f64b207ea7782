package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "bubbleburst.yaml"

// LoadBubbleburst loads the game configuration.
// Search order: customPath -> ~/.bubbleburst/configs/bubbleburst.yaml ->
// ./configs/bubbleburst.yaml -> embedded default.
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes. The result is validated.
func LoadBubbleburst(customPath string) (BubbleburstConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (BubbleburstConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBubbleburstConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultBubbleburstYAML)
	if err != nil {
		return DefaultBubbleburstConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode unmarshals data over the hardcoded defaults.
func decode(data []byte) (BubbleburstConfig, error) {
	cfg := DefaultBubbleburstConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultBubbleburstConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bubbleburst", "configs", filename)
}
