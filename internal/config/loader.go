package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the configuration file name looked up in the
	// current and home directories.
	DefaultConfigFile = ".seocheck"

	// xdgConfigFile is the configuration file name inside XDGConfigDir().
	xdgConfigFile = "config.yaml"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .seocheck configuration file.
// Pointer fields distinguish "not set" from zero values.
type File struct {
	// Timeout is the per-request timeout, e.g. "10s".
	Timeout *time.Duration `yaml:"timeout,omitempty"`

	// Concurrency is the number of in-flight probes per platform.
	Concurrency *int `yaml:"concurrency,omitempty"`

	// Delay is the pause between platforms, e.g. "500ms".
	Delay *time.Duration `yaml:"delay,omitempty"`

	// RequestsPerSecond caps probe starts; 0 disables pacing.
	RequestsPerSecond *float64 `yaml:"rps,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"user_agent,omitempty"`

	// Color is one of auto, always or never.
	Color string `yaml:"color,omitempty"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("invalid configuration file: %w", err)
	}
	return &cf, nil
}

// Apply copies every value set in the file onto cfg.
func (cf *File) Apply(cfg *Config) {
	if cf == nil {
		return
	}
	if cf.Timeout != nil {
		cfg.Timeout = *cf.Timeout
	}
	if cf.Concurrency != nil {
		cfg.Concurrency = *cf.Concurrency
	}
	if cf.Delay != nil {
		cfg.PlatformDelay = *cf.Delay
	}
	if cf.RequestsPerSecond != nil {
		cfg.RequestsPerSecond = *cf.RequestsPerSecond
	}
	if cf.UserAgent != "" {
		cfg.UserAgent = cf.UserAgent
	}
	if cf.Color != "" {
		cfg.Color = ColorMode(cf.Color)
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .seocheck in the current directory
// 3. Look for config.yaml in the XDG config directory
// 4. Look for .seocheck in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), xdgConfigFile))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
