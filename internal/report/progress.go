package report

import (
	"fmt"
	"io"

	"github.com/nao1215/seocheck/internal/model"
)

// ProgressPrinter prints one progress line per platform.
// It implements pipeline.Observer.
type ProgressPrinter struct {
	output  io.Writer
	palette Palette
}

// NewProgressPrinter creates a ProgressPrinter that outputs to the given writer.
func NewProgressPrinter(output io.Writer, palette Palette) *ProgressPrinter {
	return &ProgressPrinter{output: output, palette: palette}
}

// PlatformStarted prints "  Checking <name>... " without a newline.
func (p *ProgressPrinter) PlatformStarted(name string) {
	fmt.Fprintf(p.output, "  Checking %s... ", name)
}

// PlatformFinished completes the line started by PlatformStarted.
func (p *ProgressPrinter) PlatformFinished(_ *model.PlatformResult) {
	fmt.Fprintln(p.output, p.palette.Success("✓"))
}
