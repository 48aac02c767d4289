package config

import "errors"

// Configuration validation errors.
// These are returned by Config.Validate() so callers can use errors.Is().
var (
	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidConcurrency is returned when the concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidDelay is returned when the platform delay is negative.
	// Use 0 for no pause between platforms.
	ErrInvalidDelay = errors.New("invalid delay: must be non-negative")

	// ErrInvalidRate is returned when the requests-per-second cap is negative.
	// Use 0 to disable pacing.
	ErrInvalidRate = errors.New("invalid rate: must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidColorMode is returned for an unknown color setting.
	ErrInvalidColorMode = errors.New("invalid color mode: must be auto, always or never")
)
