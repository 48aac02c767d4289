package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/seocheck/internal/config"
)

// errMissingInput is returned after the usage hint has been printed.
var errMissingInput = errors.New("missing input file")

// errInterrupted is returned after the user stopped the run.
// It maps to exit status 0.
var errInterrupted = errors.New("interrupted by user")

// NewRootCmd creates the root command for seocheck.
// The root command itself runs the check; init and version are subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seocheck <input_file>",
		Short: "Check that SEO backlinks grouped by platform are still alive",
		Long: `seocheck reads a text file listing links grouped by platform, probes every
link over HTTP, and reports how many links per platform are active.

A link is active when it answers a HEAD request (or a GET fallback when HEAD
is rejected) with a status below 400 after following redirects. Links written
as "unavailable" are counted as errors without any request.

Input file format:
  Youtube : 2
  > https://youtube.com/watch?v=...
  > https://youtube.com/watch?v=...
  Medium : 2
  > unavailable

Examples:
  # Check links and decide interactively whether to show details
  seocheck links.txt

  # Show every link without asking
  seocheck --details links.txt

  # Write a JSON report to a file
  seocheck --json -o report.json links.txt

  # Write a Markdown report to stdout
  seocheck --markdown links.txt

Configuration file (.seocheck) example:
  timeout: 10s
  concurrency: 5
  delay: 500ms
  color: auto`,
		Args:          cobra.MaximumNArgs(1),
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCheckCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Probe flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each HEAD or GET request")
	cmd.Flags().IntP("concurrency", "c", config.DefaultConcurrency,
		"Maximum number of links checked at once within a platform")
	cmd.Flags().Duration("delay", config.DefaultPlatformDelay,
		"Pause between two platforms")
	cmd.Flags().Float64("rps", config.DefaultRequestsPerSecond,
		"Maximum link checks started per second (0 = unlimited)")
	cmd.Flags().StringP("user-agent", "u", config.DefaultUserAgent,
		"User-Agent header sent with every request")

	// Configuration file
	cmd.Flags().String("config", "",
		"Configuration file path (default: .seocheck in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("details", false,
		"Show the per-link details without asking")
	cmd.Flags().Bool("no-prompt", false,
		"Never ask whether to show the per-link details")
	cmd.Flags().Bool("no-color", false,
		"Disable colored output")
	cmd.Flags().Bool("log-json", false,
		"Write logs to stderr as JSON")

	// Add subcommands
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and exits with the resulting status.
func Execute() {
	err := NewRootCmd().Execute()
	os.Exit(exitCode(err, os.Stderr))
}

// exitCode maps a command error to a process exit status and prints the
// error message when one is due.
func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errInterrupted):
		return 0
	case errors.Is(err, errMissingInput):
		// Usage was already printed.
		return 1
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}
