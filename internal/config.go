package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the workspace configuration, loaded from a YAML file. Every
// field has a usable default so the tool runs with no config at all.
type Config struct {
	Endpoint         string `yaml:"endpoint"`
	APIKey           string `yaml:"api_key"`
	DataDir          string `yaml:"data_dir"`
	Theme            string `yaml:"theme"`
	AutosaveDebounce int    `yaml:"autosave_debounce_seconds"`
	AutosavePeriodic int    `yaml:"autosave_periodic_seconds"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:         "http://localhost:5000",
		DataDir:          defaultDataDir(),
		Theme:            "dark",
		AutosaveDebounce: 2,
		AutosavePeriodic: 30,
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".programming-workspace"
	}
	return filepath.Join(home, ".programming-workspace")
}

// DefaultConfigPath returns the conventional config file location.
func DefaultConfigPath() string {
	return filepath.Join(defaultDataDir(), "config.yaml")
}

// LoadConfig reads path and merges it over the defaults. A missing file is
// not an error; malformed YAML is. The WORKSPACE_API_KEY environment
// variable overrides the file's api_key.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if key := os.Getenv("WORKSPACE_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultConfig().Endpoint
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	if cfg.AutosaveDebounce <= 0 {
		cfg.AutosaveDebounce = 2
	}
	if cfg.AutosavePeriodic <= 0 {
		cfg.AutosavePeriodic = 30
	}

	return cfg, nil
}

// DatabasePath returns the workspace store location under the data dir.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "workspace.db")
}

// EnsureDataDir creates the data directory if needed.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0755)
}
