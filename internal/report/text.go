package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/nao1215/seocheck/internal/model"
)

const (
	// ruleWidth is the width of the "=" banners and "-" separators.
	ruleWidth = 70

	// nameColumnWidth is the display width of the platform name column.
	nameColumnWidth = 20
)

// TextWriter renders results for a terminal.
//
// Design decision: The summary, the details and the surrounding messages are
// separate methods because the CLI interleaves them with progress output and
// the interactive prompt.
type TextWriter struct {
	baseWriter
	palette Palette
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, palette Palette) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
		palette:    palette,
	}
}

// rule returns a banner line made of ch.
func (w *TextWriter) rule(ch string) string {
	return strings.Repeat(ch, ruleWidth)
}

// WriteBanner writes the tool banner.
func (w *TextWriter) WriteBanner() (int, error) {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(w.palette.Title("SEO LINK CHECKER") + "\n")
	sb.WriteString(w.palette.Bold(w.rule("=")) + "\n\n")
	return w.write(sb.String())
}

// WriteStart writes the messages shown after the input file was parsed.
func (w *TextWriter) WriteStart(inputFile string, platforms int) (int, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📁 Reading file: %s\n", w.palette.Bold(inputFile))
	fmt.Fprintf(&sb, "✓ Found %d platform(s)\n\n", platforms)
	sb.WriteString(w.palette.Bold("Starting check...") + "\n\n")
	return w.write(sb.String())
}

// WriteSummary writes one row per platform followed by the SUMMARY block.
//
// Each row is the platform name padded to 20 display cells, then [total]
// and [active], and [error] only when some links failed. The name is colored
// by platform health.
func (w *TextWriter) WriteSummary(results []*model.PlatformResult) (int, error) {
	var sb strings.Builder

	bar := w.palette.Bold(w.rule("="))
	sb.WriteString("\n" + bar + "\n")
	sb.WriteString(w.palette.Bold("SEO LINK CHECK RESULTS") + "\n")
	sb.WriteString(bar + "\n\n")

	for _, r := range results {
		if r == nil {
			continue
		}
		w.writeRow(&sb, r)
	}

	summary := model.Summarize(results)

	sb.WriteString("\n" + bar + "\n")
	sb.WriteString(w.palette.Bold("SUMMARY") + "\n")
	fmt.Fprintf(&sb, "Total Links     : %d\n", summary.Total)
	fmt.Fprintf(&sb, "Active Links    : %s\n", w.palette.Success(fmt.Sprint(summary.Active)))
	fmt.Fprintf(&sb, "Error Links     : %s\n", w.palette.Failure(fmt.Sprint(summary.Error)))
	fmt.Fprintf(&sb, "Success Rate    : %s\n", summary.SuccessRate())
	sb.WriteString(bar + "\n\n")

	return w.write(sb.String())
}

// writeRow writes the summary row of one platform.
func (w *TextWriter) writeRow(sb *strings.Builder, r *model.PlatformResult) {
	name := runewidth.FillRight(r.Platform, nameColumnWidth)
	sb.WriteString(w.palette.Health(r.Health(), name))
	fmt.Fprintf(sb, " [%d] %s", r.Total, w.palette.Success(fmt.Sprintf("[%d]", r.Active)))
	if r.Error > 0 {
		sb.WriteString(" " + w.palette.Failure(fmt.Sprintf("[%d]", r.Error)))
	}
	sb.WriteString("\n")
}

// WriteDetails writes every link of every platform with its status.
// Links are numbered from 1 in the order they were recorded.
func (w *TextWriter) WriteDetails(results []*model.PlatformResult) (int, error) {
	var sb strings.Builder

	sb.WriteString("\n" + w.palette.Bold("PER-LINK DETAILS") + "\n\n")

	for _, r := range results {
		if r == nil {
			continue
		}

		header := fmt.Sprintf("%s (%d/%d active)", r.Platform, r.Active, r.Total)
		sb.WriteString("\n" + w.palette.Title(header) + "\n")
		sb.WriteString(w.rule("-") + "\n")

		for i, link := range r.Links {
			symbol, text := w.palette.Failure("✗"), w.palette.Failure("ERROR")
			if link.Status.IsActive() {
				symbol, text = w.palette.Success("✓"), w.palette.Success("ACTIVE")
			}
			fmt.Fprintf(&sb, "  %d. %s [%s] %s\n", i+1, symbol, text, link.URL)
		}
	}

	return w.write(sb.String())
}

// WritePrompt writes the question asked before showing details.
func (w *TextWriter) WritePrompt() (int, error) {
	return w.write("\n" + w.palette.Warning("Show per-link details? (y/n): "))
}

// WriteDone writes the closing message of a completed run.
func (w *TextWriter) WriteDone() (int, error) {
	return w.write("\n" + w.palette.Success("✓ Check complete!") + "\n\n")
}

// WriteInterrupted writes the notice shown when the user stops the run.
func (w *TextWriter) WriteInterrupted() (int, error) {
	return w.write("\n\n" + w.palette.Warning("Program stopped by user.") + "\n")
}

// WriteUsage writes the usage hint with an example input file.
func (w *TextWriter) WriteUsage(command string) (int, error) {
	var sb strings.Builder
	sb.WriteString(w.palette.Warning(fmt.Sprintf("Usage: %s <input_file>", command)) + "\n")
	sb.WriteString("\nExample input file:\n")
	sb.WriteString("  Youtube : 2\n")
	sb.WriteString("  > https://youtube.com/watch?v=...\n")
	sb.WriteString("  > https://youtube.com/watch?v=...\n")
	sb.WriteString("  Medium : 2\n")
	sb.WriteString("  > unavailable\n\n")
	return w.write(sb.String())
}
