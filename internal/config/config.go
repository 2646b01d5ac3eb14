// Package config loads the YAML configuration file
package config

import (
	"os"
	"path/filepath"

	"github.com/thenoetrevino/colgrid/internal/models"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Grid        GridConfig                    `yaml:"grid"`
	Database    DatabaseConfig                `yaml:"database"`
	Logging     LoggingConfig                 `yaml:"logging"`
	Columns     map[string][]models.ColumnDef `yaml:"columns,omitempty"` // Overrides keyed by grid name
	KeyMappings KeyMappings                   `yaml:"key_mappings"`
	ColorScheme ColorScheme                   `yaml:"theme"`
}

// DatabaseConfig locates the layout database
type DatabaseConfig struct {
	Path string `yaml:"path,omitempty"` // Empty means ~/.colgrid/colgrid.db
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn or error
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Grid:        DefaultGridConfig(),
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
}

// ColumnOverrides returns the configured column definitions for a grid
func (c *Config) ColumnOverrides(gridName string) []models.ColumnDef {
	return c.Columns[gridName]
}

// loadThemeFile loads and merges theme from COLGRID_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("COLGRID_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		config.applyDefaults()
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path, falling back to defaults when the file
// doesn't exist
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		config.applyDefaults()
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Load theme from COLGRID_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path of the config file: $XDG_CONFIG_HOME/colgrid/config.yaml,
// else ~/.config/colgrid/config.yaml
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "colgrid", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "colgrid", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Grid.applyDefaults()
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
