package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config dirs.
const configFile = "surimi.yaml"

// LoadSurimi loads the game configuration.
// Search order: customPath -> ~/.surimi/configs/surimi.yaml -> ./configs/surimi.yaml -> embedded default
func LoadSurimi(customPath string) (SurimiConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SurimiConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SurimiConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSurimiYAML)
	if err != nil {
		return DefaultSurimiConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so partial files only
// override the keys they set.
func Parse(data []byte) (SurimiConfig, error) {
	cfg := DefaultSurimiConfig()
	// Slices replace rather than merge; start them empty so a file that sets
	// them does not append to the defaults.
	classic := cfg.Classic
	cfg.Classic = ClassicConfig{}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SurimiConfig{}, err
	}
	if cfg.Classic.Enemies == nil && cfg.Classic.Walls == nil {
		cfg.Classic = classic
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".surimi", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SurimiConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust survivability based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Damage *= 0.5
		cfg.Enemies.MaxAlive = cfg.Enemies.MaxAlive / 2
	case DifficultyHard:
		cfg.Enemies.Damage *= 2
		cfg.Projectiles.Damage *= 0.8
	}
}
