package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/seocheck/internal/checker"
	"github.com/nao1215/seocheck/internal/config"
	"github.com/nao1215/seocheck/internal/input"
	seclog "github.com/nao1215/seocheck/internal/log"
	"github.com/nao1215/seocheck/internal/model"
	"github.com/nao1215/seocheck/internal/pipeline"
	"github.com/nao1215/seocheck/internal/report"
)

// streams bundles the standard streams of one command invocation.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// runCheckCmd executes the link check.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	std := streams{in: cmd.InOrStdin(), out: cmd.OutOrStdout(), err: cmd.ErrOrStderr()}

	if len(args) == 0 {
		text := report.NewTextWriter(std.out, report.NewPalette(report.ColorEnabled(config.ColorAuto, std.out)))
		_, _ = text.WriteBanner()
		_, _ = text.WriteUsage(cmd.Root().Name())
		return errMissingInput
	}

	// Build config from defaults, config file and flags
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := setupLogger(std.err, cfg.Verbose, getBoolFlag(cmd, "log-json"))
	slog.SetDefault(logger)

	// Cancel the run on Ctrl-C or SIGTERM
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runCheck(ctx, cfg, std, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// getBoolFlag returns a boolean flag, or false when it is not defined.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return v
}

// buildConfig creates a Config for inputFile.
// Values are layered as defaults, then the configuration file, then flags
// that were set explicitly on the command line.
func buildConfig(cmd *cobra.Command, inputFile string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.InputFile = inputFile
	cfg.Verbose = getVerboseFlag(cmd)

	flags := cmd.Flags()
	var err error

	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently keep the defaults if no file found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("concurrency") {
		if cfg.Concurrency, err = flags.GetInt("concurrency"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("delay") {
		if cfg.PlatformDelay, err = flags.GetDuration("delay"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("rps") {
		if cfg.RequestsPerSecond, err = flags.GetFloat64("rps"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("user-agent") {
		if cfg.UserAgent, err = flags.GetString("user-agent"); err != nil {
			return nil, err
		}
	}

	noColor, err := flags.GetBool("no-color")
	if err != nil {
		return nil, err
	}
	if noColor {
		cfg.Color = config.ColorNever
	}

	cfg.JSONReport, err = flags.GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = flags.GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = flags.GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.ShowDetails, err = flags.GetBool("details")
	if err != nil {
		return nil, err
	}

	cfg.NoPrompt, err = flags.GetBool("no-prompt")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// setupLogger creates a structured logger that redacts credentials.
func setupLogger(w io.Writer, verbose, jsonFormat bool) *slog.Logger {
	if jsonFormat {
		return seclog.NewSecureJSONLogger(w, verbose)
	}
	return seclog.NewSecureLogger(w, verbose)
}

// documentMode reports whether the run produces a JSON or Markdown document.
func documentMode(cfg *config.Config) bool {
	return cfg.JSONReport || cfg.MarkdownReport
}

// runCheck parses the input file, checks every platform and reports.
func runCheck(ctx context.Context, cfg *config.Config, std streams, logger *slog.Logger) error {
	// Console messages move to stderr when a document goes to stdout.
	console := std.out
	if documentMode(cfg) && cfg.ReportFile == "" {
		console = std.err
	}
	palette := report.NewPalette(report.ColorEnabled(cfg.Color, console))
	text := report.NewTextWriter(console, palette)

	_, _ = text.WriteBanner()

	list, err := input.ParseFile(cfg.InputFile)
	if err != nil {
		return err
	}
	if list.Len() == 0 {
		return fmt.Errorf("%w: %s", input.ErrNoPlatforms, cfg.InputFile)
	}

	_, _ = text.WriteStart(cfg.InputFile, list.Len())

	prober := checker.NewProber(
		checker.WithTimeout(cfg.Timeout),
		checker.WithUserAgent(cfg.UserAgent),
		checker.WithRequestsPerSecond(cfg.RequestsPerSecond),
		checker.WithProberLogger(logger),
	)
	runner := pipeline.New(
		checker.New(prober,
			checker.WithConcurrency(cfg.Concurrency),
			checker.WithLogger(logger),
		),
		pipeline.WithDelay(cfg.PlatformDelay),
		pipeline.WithObserver(report.NewProgressPrinter(console, palette)),
		pipeline.WithLogger(logger),
	)

	results, err := runner.Run(ctx, list)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			_, _ = text.WriteInterrupted()
			return errInterrupted
		}
		return err
	}

	if documentMode(cfg) {
		if err := outputReport(cfg, std.out, results); err != nil {
			return err
		}
		_, _ = text.WriteDone()
		return nil
	}

	if err := showResults(ctx, cfg, text, std.in, results); err != nil {
		if errors.Is(err, context.Canceled) {
			_, _ = text.WriteInterrupted()
			return errInterrupted
		}
		return err
	}

	if cfg.ReportFile != "" {
		if err := outputReport(cfg, std.out, results); err != nil {
			return err
		}
	}

	_, _ = text.WriteDone()
	return nil
}

// showResults prints the summary and, when requested, the per-link details.
func showResults(ctx context.Context, cfg *config.Config, text *report.TextWriter, in io.Reader, results []*model.PlatformResult) error {
	if _, err := text.WriteSummary(results); err != nil {
		return err
	}

	showDetails := cfg.ShowDetails
	if cfg.Interactive() {
		_, _ = text.WritePrompt()
		answer, err := promptDetails(ctx, in)
		if err != nil {
			return err
		}
		showDetails = answer
	}

	if showDetails {
		if _, err := text.WriteDetails(results); err != nil {
			return err
		}
	}
	return nil
}

// promptDetails reads one line from in and reports whether it is "y".
// Empty input, any other answer and EOF mean no. Cancelling ctx abandons
// the read and returns ctx.Err().
func promptDetails(ctx context.Context, in io.Reader) (bool, error) {
	answer := make(chan string, 1)
	go func() {
		line, _ := bufio.NewReader(in).ReadString('\n') //nolint:errcheck // EOF counts as "no"
		answer <- line
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case line := <-answer:
		return strings.EqualFold(strings.TrimSpace(line), "y"), nil
	}
}

// outputReport writes the report in the requested format to the report file,
// or to stdout when no file is set.
func outputReport(cfg *config.Config, stdout io.Writer, results []*model.PlatformResult) error {
	output := stdout
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	runReport := model.NewRunReport(cfg.InputFile, results)

	switch {
	case cfg.JSONReport:
		_, err := report.NewJSONWriter(output, report.WithPrettyPrint()).Write(runReport)
		return err
	case cfg.MarkdownReport:
		_, err := report.NewMarkdownWriter(output).Write(runReport)
		return err
	}

	// Plain text file: summary and details without colors.
	text := report.NewTextWriter(output, report.NewPalette(false))
	if _, err := text.WriteSummary(results); err != nil {
		return err
	}
	_, err := text.WriteDetails(results)
	return err
}
