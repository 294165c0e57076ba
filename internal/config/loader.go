package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EmbeddedSource is reported by Load when the built-in defaults were used.
const EmbeddedSource = "embedded"

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.flappy/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files only need to set the values they change; everything else keeps its default.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, cfg.Validate()
	}

	candidates := []string{userConfigPath("flappy.yaml"), filepath.Join("configs", "flappy.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := loadFile(path)
		if err != nil {
			return cfg, path, err
		}
		return cfg, path, cfg.Validate()
	}

	cfg, err := loadEmbedded(defaultYAML)
	return cfg, EmbeddedSource, err
}

// loadEmbedded decodes the built-in file. A broken embed falls back to
// Default() but still surfaces the error so callers can report it.
func loadEmbedded(data []byte) (Config, error) {
	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("config: failed to parse embedded defaults: %w", err)
	}
	return cfg, cfg.Validate()
}

// Parse decodes YAML on top of the built-in defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", filename)
}
