package config

import (
	"os"
	"path/filepath"

	"github.com/thenoetrevino/roster/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Config represents the user-level UI configuration. Database settings are
// loaded separately by LoadDatabase because they are required.
type Config struct {
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// loadThemeFile loads and merges theme from ROSTER_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("ROSTER_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme, true)
	}
}

func defaultConfig() *Config {
	return &Config{ColorScheme: DefaultColorScheme()}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig()
		loadThemeFile(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		config := defaultConfig()
		loadThemeFile(config)
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.ColorScheme.ApplyDefaults()

	return &config, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "roster", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "roster", "config.yaml"), nil
}
