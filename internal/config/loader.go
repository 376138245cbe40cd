package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in each search location.
const ConfigFile = "rgbsweeper.yaml"

// LoadSweeper loads rgbsweeper configuration.
// Search order: customPath -> ~/.rgbsweeper/configs/rgbsweeper.yaml ->
// ./configs/rgbsweeper.yaml -> embedded default.
//
// Fields missing from a file keep their default values. Only an explicit
// customPath produces an error; broken files elsewhere are skipped.
func LoadSweeper(customPath string) (SweeperConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSweeperConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSweeper(data)
		if err != nil {
			return DefaultSweeperConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSweeper(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parseSweeper(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSweeper(defaultSweeperYAML)
	if err != nil {
		return DefaultSweeperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSweeper decodes YAML on top of the hardcoded defaults.
func parseSweeper(data []byte) (SweeperConfig, error) {
	cfg := DefaultSweeperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rgbsweeper", "configs", filename)
}
