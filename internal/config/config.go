// Package config stores the client CLI settings in ~/.listkeeper/config.json.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const (
	configDirName  = ".listkeeper"
	configFileName = "config.json"

	// DefaultBaseURL points at a locally running listkeeper-server.
	DefaultBaseURL = "http://localhost:8080/api/v1"
	// EnvBaseURL overrides the configured server URL.
	EnvBaseURL = "LISTKEEPER_URL"
)

type Config struct {
	BaseURL string `json:"base_url"`
}

// GetConfigPath returns the path to the config file (~/.listkeeper/config.json)
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// LoadConfig loads the config file, returning an empty config when none exists.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func SaveConfig(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ResolveBaseURL picks the server URL: environment, then config file, then default.
func ResolveBaseURL() string {
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		return strings.TrimRight(v, "/")
	}
	if cfg, err := LoadConfig(); err == nil && cfg.BaseURL != "" {
		return strings.TrimRight(cfg.BaseURL, "/")
	}
	return DefaultBaseURL
}
