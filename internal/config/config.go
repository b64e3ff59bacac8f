package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

// Sentinel errors.
var (
	ErrNotFound = errors.New("config file not found")
	ErrInvalid  = errors.New("invalid config")
)

// Config holds everything the daemon carries between cycles: watch roots
// and scheduling. Nothing else survives a cycle.
type Config struct {
	// Directories are the watch roots, with ~ expansion applied at load
	// time. Order is preserved; the locator processes roots in this order.
	Directories []string `yaml:"directories"`

	// Interval is the time between cycles in seconds.
	Interval int `yaml:"interval"`

	// Project is the project label for tracker sync.
	Project string `yaml:"project"`

	// Watch enables fsnotify-triggered early cycles in daemon mode.
	Watch bool `yaml:"watch,omitempty"`

	// LogFile, when set, receives a JSON copy of the log stream.
	LogFile string `yaml:"log_file,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`
}

// NewDefault creates a Config with default values and no directories.
func NewDefault() *Config {
	return &Config{
		Interval: DefaultInterval,
		Project:  DefaultProject,
		LogLevel: DefaultLogLevel,
	}
}

// DefaultPath returns the path to ~/.config/todowatch/config.yml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config/todowatch", ConfigFileName), nil
}

// Load reads a config file, applying defaults for unset fields and ~
// expansion to all directories. A missing file returns ErrNotFound.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from flag or well-known location
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := NewDefault()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	for i, dir := range cfg.Directories {
		cfg.Directories[i] = ExpandHome(dir)
	}

	return cfg, nil
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if len(c.Directories) == 0 {
		return fmt.Errorf("%w: at least one directory is required", ErrInvalid)
	}
	if c.Interval < 1 {
		return fmt.Errorf("%w: interval must be at least 1 second", ErrInvalid)
	}
	if c.Project == "" {
		return fmt.Errorf("%w: project is required", ErrInvalid)
	}
	return nil
}

// IntervalDuration returns the cycle interval as a time.Duration.
func (c *Config) IntervalDuration() time.Duration {
	return time.Duration(c.Interval) * time.Second
}

// ExpandHome replaces a leading ~ with the user's home directory. Applied
// once at configuration time; components downstream see literal paths.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
