package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultTimeout is the per-request timeout for HEAD and GET probes.
	DefaultTimeout = 10 * time.Second

	// DefaultConcurrency is the number of in-flight probes per platform.
	// Kept small so a single platform does not hammer one host.
	DefaultConcurrency = 5

	// DefaultPlatformDelay is the pause after each platform before the next one
	// starts. It lowers the chance of remote rate limiting.
	DefaultPlatformDelay = 500 * time.Millisecond

	// DefaultRequestsPerSecond of 0 means probes are not paced.
	DefaultRequestsPerSecond = 0.0

	// DefaultUserAgent is a browser-like User-Agent.
	// Some platforms reject requests that do not look like a browser.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// AppName is the application name used for XDG directory paths.
	AppName = "seocheck"
)

// ColorMode controls terminal coloring.
type ColorMode string

const (
	// ColorAuto enables color when stdout is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways always emits ANSI color sequences.
	ColorAlways ColorMode = "always"
	// ColorNever never emits ANSI color sequences.
	ColorNever ColorMode = "never"
)

// IsValid reports whether m is a known color mode.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config holds all configuration options for seocheck.
// It is populated from defaults, the optional configuration file and CLI
// flags, in that order, and passed down explicitly.
type Config struct {
	// InputFile is the link list to check.
	InputFile string

	// Timeout is the per-request timeout for each HEAD or GET.
	Timeout time.Duration

	// Concurrency is the maximum number of probes in flight for one platform.
	Concurrency int

	// PlatformDelay is the pause between two platforms.
	PlatformDelay time.Duration

	// RequestsPerSecond caps probe starts across the worker pool.
	// Zero disables pacing.
	RequestsPerSecond float64

	// UserAgent is the User-Agent header sent with every probe.
	UserAgent string

	// Verbose enables debug logging.
	Verbose bool

	// Color selects terminal coloring for the text report.
	Color ColorMode

	// ConfigFilePath is the configuration file given with --config.
	// If empty, the default locations are searched.
	ConfigFilePath string

	// JSONReport outputs a JSON document instead of the text report.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport outputs a Markdown document instead of the text report.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output path for the report. Empty means stdout.
	ReportFile string

	// ShowDetails prints the per-link listing without asking.
	ShowDetails bool

	// NoPrompt disables the interactive detail prompt.
	NoPrompt bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Timeout:           DefaultTimeout,
		Concurrency:       DefaultConcurrency,
		PlatformDelay:     DefaultPlatformDelay,
		RequestsPerSecond: DefaultRequestsPerSecond,
		UserAgent:         DefaultUserAgent,
		Color:             ColorAuto,
	}
}

// XDGConfigDir returns the XDG config directory for seocheck.
// On Linux: ~/.config/seocheck
// On macOS: ~/Library/Application Support/seocheck
// On Windows: %APPDATA%\seocheck
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if c.PlatformDelay < 0 {
		return ErrInvalidDelay
	}
	if c.RequestsPerSecond < 0 {
		return ErrInvalidRate
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if !c.Color.IsValid() {
		return ErrInvalidColorMode
	}
	return nil
}

// Interactive reports whether the detail prompt should be shown.
func (c *Config) Interactive() bool {
	return !c.NoPrompt && !c.ShowDetails && !c.JSONReport && !c.MarkdownReport
}
