package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultServerURL is where the Spaces server listens in development.
const DefaultServerURL = "http://localhost:5000"

// Config represents the application configuration
type Config struct {
	ServerURL      string      `yaml:"server_url"`
	RequestTimeout int         `yaml:"request_timeout_seconds"`
	KeyMappings    KeyMappings `yaml:"key_mappings"`
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	// LANES_SERVER_URL overrides the configured server for one run.
	if override := os.Getenv("LANES_SERVER_URL"); override != "" {
		config.ServerURL = override
	}

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "lanes", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "lanes", "config.yaml"), nil
}

func defaultConfig() *Config {
	config := &Config{
		ServerURL:      DefaultServerURL,
		RequestTimeout: 30,
		KeyMappings:    DefaultKeyMappings(),
	}
	if override := os.Getenv("LANES_SERVER_URL"); override != "" {
		config.ServerURL = override
	}
	return config
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 30
	}
	c.KeyMappings.applyDefaults()
}
