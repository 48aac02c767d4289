package report

import (
	"io"

	"github.com/nao1215/seocheck/internal/model"
)

// Writer defines the interface for whole-run report output.
// Implementations write a finished RunReport in one go.
//
// Design decision: The terminal TextWriter does not implement Writer because
// its summary and details are printed at different times, with the
// interactive prompt in between.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.RunReport) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// write sends s to the output in a single call.
func (b baseWriter) write(s string) (int, error) {
	return io.WriteString(b.output, s)
}
