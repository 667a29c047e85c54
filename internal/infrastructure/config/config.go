// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for klisis configuration.
	DefaultConfigDir = ".klisis"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultStoreFile is the default paradigm history database name.
	DefaultStoreFile = "paradigms.db"
)

// Config holds configuration for a klisis invocation (read-only after load).
type Config struct {
	Output OutputConfig `yaml:"output,omitempty"`
	Batch  BatchConfig  `yaml:"batch,omitempty"`
	Store  StoreConfig  `yaml:"store,omitempty"`
	Log    LogConfig    `yaml:"log,omitempty"`
}

// OutputConfig controls how paradigms are printed and written.
type OutputConfig struct {
	WithArticle bool   `yaml:"with_article,omitempty" env:"KLISIS_WITH_ARTICLE"`
	Separator   string `yaml:"separator,omitempty"    env:"KLISIS_SEPARATOR"`
	Format      string `yaml:"format,omitempty"       env:"KLISIS_FORMAT"`
}

// BatchConfig controls batch declension.
type BatchConfig struct {
	Workers int `yaml:"workers,omitempty" env:"KLISIS_WORKERS"`
}

// StoreConfig controls the paradigm history database.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled,omitempty" env:"KLISIS_STORE_ENABLED"`
	Path    string `yaml:"path,omitempty"    env:"KLISIS_STORE_PATH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"  env:"KLISIS_LOG_LEVEL"`
	Format string `yaml:"format,omitempty" env:"KLISIS_LOG_FORMAT"`
}

// SQLiteConfig holds configuration for the SQLite paradigm store.
type SQLiteConfig struct {
	// Path is the file path to the SQLite database, or ":memory:".
	Path string
}

var (
	validOutputFormats = []string{"csv", "json"}
	validLogLevels     = []string{"debug", "info", "warn", "error"}
	validLogFormats    = []string{"text", "json"}
)

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Separator: ", ",
			Format:    "csv",
		},
		Batch: BatchConfig{
			Workers: 4,
		},
		Store: StoreConfig{
			Path: filepath.Join(DefaultConfigDir, DefaultStoreFile),
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load loads configuration from the .klisis directory in the given path.
// A missing config file is not an error: defaults and environment apply.
// Priority: ENV > YAML > defaults.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	if !contains(validOutputFormats, c.Output.Format) {
		return fmt.Errorf("output.format must be one of %v (got %q)", validOutputFormats, c.Output.Format)
	}
	if c.Output.Separator == "" {
		return fmt.Errorf("output.separator must not be empty")
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be >= 1 (got %d)", c.Batch.Workers)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path must not be empty")
	}
	if !contains(validLogLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", validLogLevels, c.Log.Level)
	}
	if !contains(validLogFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v (got %q)", validLogFormats, c.Log.Format)
	}
	return nil
}

// StorePath resolves the store path against basePath unless it is absolute or in-memory.
func (c *Config) StorePath(basePath string) string {
	if c.Store.Path == ":memory:" || filepath.IsAbs(c.Store.Path) {
		return c.Store.Path
	}
	return filepath.Join(basePath, c.Store.Path)
}

// ConfigDir returns the path to the .klisis config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
