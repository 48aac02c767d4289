// Package config provides configuration structures and utilities for seocheck.
// It defines the probe settings (timeout, concurrency, pacing), report
// preferences, and the optional YAML configuration file.
package config
