// Package config loads the shell configuration from ~/.toysql/config.yaml and
// the TOYSQL_* environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zhangbiao2009/simple-sql-catalog/pkg/storage"
)

// Config holds the shell settings. The catalog core reads none of these.
type Config struct {
	DataDir      string `yaml:"data-dir,omitempty"`
	MarkerSuffix string `yaml:"marker-suffix,omitempty"`
	InMemory     bool   `yaml:"in-memory,omitempty"`
	Prompt       string `yaml:"prompt,omitempty"`
	HistoryFile  string `yaml:"history-file,omitempty"`
	LogLevel     string `yaml:"log-level,omitempty"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		DataDir:      ".",
		MarkerSuffix: storage.DefaultMarkerSuffix,
		Prompt:       "sql> ",
		HistoryFile:  filepath.Join(Dir(), "history"),
		LogLevel:     "warn",
	}
}

// Dir returns the path to ~/.toysql/.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".toysql")
}

// Path returns the path to ~/.toysql/config.yaml.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads path on top of the defaults, then applies the environment.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("TOYSQL_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("TOYSQL_MARKER_SUFFIX"); v != "" {
		c.MarkerSuffix = v
	}
	if v := os.Getenv("TOYSQL_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("TOYSQL_IN_MEMORY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TOYSQL_IN_MEMORY: %w", err)
		}
		c.InMemory = b
	}
	return nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if strings.ContainsAny(c.MarkerSuffix, `/\`) {
		return fmt.Errorf("marker-suffix %q must not contain a path separator", c.MarkerSuffix)
	}
	return nil
}

// Level parses LogLevel
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log-level %q", c.LogLevel)
	}
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
