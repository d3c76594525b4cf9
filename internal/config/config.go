// Package config loads the global configuration and the Annict credential
// file. The credential file is the classic key.ini with the bearer token
// under [API] key; the rest of the configuration is YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration.
type Config struct {
	KeyFile string    `yaml:"key_file"`
	Formats []string  `yaml:"formats"`
	API     APIConfig `yaml:"api"`
}

// APIConfig holds transport settings for the Annict client.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"` // seconds, 0 means transport default
}

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		KeyFile: "key.ini",
		Formats: []string{"mp4", "mkv", "avi", "webm", "m4v", "ts", "flv"},
		API: APIConfig{
			Timeout: 30,
		},
	}
}

// Load reads the global configuration from customPath or the standard
// locations, falling back to defaults when no file exists.
func Load(customPath string) (*Config, error) {
	cfg := Default()

	path := customPath
	if path == "" {
		path = findGlobalConfig()
	}
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config at %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config at %s: %w", path, err)
	}

	return &cfg, nil
}

// findGlobalConfig searches the standard locations for the config file.
func findGlobalConfig() string {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			xdgConfig = filepath.Join(home, ".config")
		}
	}

	if xdgConfig != "" {
		path := filepath.Join(xdgConfig, "annictl", "config.yml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	etcPath := "/etc/annictl/config.yml"
	if _, err := os.Stat(etcPath); err == nil {
		return etcPath
	}

	return ""
}

// LoadToken reads the Annict bearer token from the key.ini credential file
// (section API, key key). A missing file yields an empty token and no error
// so that remote features can degrade with a warning instead of crashing.
func LoadToken(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("failed to read credential file %s: %w", path, err)
	}

	return v.GetString("API.key"), nil
}
