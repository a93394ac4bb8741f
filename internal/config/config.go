package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Backend names accepted in the config file and HIREBOARD_BACKEND
const (
	BackendSQLite    = "sqlite"
	BackendSimulated = "simulated"
)

// ErrUnknownBackend is returned by Validate for an unsupported backend name
var ErrUnknownBackend = errors.New("unknown backend")

// Config represents the application configuration
type Config struct {
	Backend     string          `yaml:"backend"`
	Database    DatabaseConfig  `yaml:"database"`
	Simulated   SimulatedConfig `yaml:"simulated"`
	MoveTimeout time.Duration   `yaml:"move_timeout"`
	NATS        NATSConfig      `yaml:"nats"`
	Outreach    OutreachConfig  `yaml:"outreach"`
	KeyMappings KeyMappings     `yaml:"key_mappings"`
	ColorScheme ColorScheme     `yaml:"theme"`
}

// DatabaseConfig locates the sqlite file. An empty path means
// ~/.hireboard/hireboard.db.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// SimulatedConfig tunes the in-process backend
type SimulatedConfig struct {
	FetchLatency time.Duration `yaml:"fetch_latency"`
	MoveLatency  time.Duration `yaml:"move_latency"`
	BulkLatency  time.Duration `yaml:"bulk_latency"`
	FailureRate  float64       `yaml:"failure_rate"`
}

// NATSConfig enables the transition relay when URL is set
type NATSConfig struct {
	URL     string `yaml:"url"`
	Token   string `yaml:"token"`
	Subject string `yaml:"subject"`
}

// OutreachConfig holds draft preferences
type OutreachConfig struct {
	DefaultTone string `yaml:"default_tone"`
}

// Defaults
const (
	DefaultMoveTimeout  = 5 * time.Second
	DefaultFetchLatency = 500 * time.Millisecond
	DefaultMoveLatency  = 500 * time.Millisecond
	DefaultBulkLatency  = 800 * time.Millisecond
	DefaultTone         = "professional"
	DefaultSubject      = "hireboard.transitions"
)

// Default returns a config with every field at its default
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile merges the theme from HIREBOARD_THEME_FILE, if set
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("HIREBOARD_THEME_FILE")
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

// Load loads config from the user's config directory.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		config.applyEnv()
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the config at path, falling back to defaults when the
// file is missing
func LoadFrom(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	loadThemeFile(&config)
	config.applyEnv()
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Validate rejects values the rest of the app cannot act on
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendSimulated:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.Simulated.FailureRate < 0 || c.Simulated.FailureRate > 1 {
		return fmt.Errorf("simulated.failure_rate must be between 0 and 1, got %v", c.Simulated.FailureRate)
	}
	return nil
}

// Path returns the path to the config file
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "hireboard", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "hireboard", "config.yaml"), nil
}

// applyEnv lets the environment override the file
func (c *Config) applyEnv() {
	if v := os.Getenv("HIREBOARD_BACKEND"); v != "" {
		c.Backend = v
	}
	if v := os.Getenv("HIREBOARD_DB"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		c.NATS.URL = v
	}
	if v := os.Getenv("NATS_TOKEN"); v != "" {
		c.NATS.Token = v
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Backend == "" {
		c.Backend = BackendSQLite
	}
	if c.MoveTimeout <= 0 {
		c.MoveTimeout = DefaultMoveTimeout
	}
	if c.Simulated.FetchLatency == 0 {
		c.Simulated.FetchLatency = DefaultFetchLatency
	}
	if c.Simulated.MoveLatency == 0 {
		c.Simulated.MoveLatency = DefaultMoveLatency
	}
	if c.Simulated.BulkLatency == 0 {
		c.Simulated.BulkLatency = DefaultBulkLatency
	}
	if c.NATS.Subject == "" {
		c.NATS.Subject = DefaultSubject
	}
	if c.Outreach.DefaultTone == "" {
		c.Outreach.DefaultTone = DefaultTone
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
