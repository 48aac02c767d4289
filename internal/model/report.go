package model

import "time"

// RunReport is the complete result of one run, used for JSON output.
//
// Design decision: We wrap the platform results with metadata rather than
// serializing the slice directly so consumers get the summary and the success
// rate without recomputing them.
type RunReport struct {
	// GeneratedAt is when the report was assembled.
	GeneratedAt time.Time `json:"generated_at"`

	// InputFile is the path of the parsed input file.
	InputFile string `json:"input_file,omitempty"`

	// Platforms holds the per-platform results in input order.
	Platforms []*PlatformResult `json:"platforms"`

	// Summary holds the aggregate counters.
	Summary Summary `json:"summary"`

	// SuccessRate is the formatted success rate, e.g. "50.0%".
	SuccessRate string `json:"success_rate"`
}

// NewRunReport builds a RunReport from platform results.
func NewRunReport(inputFile string, results []*PlatformResult) *RunReport {
	summary := Summarize(results)
	return &RunReport{
		GeneratedAt: time.Now(),
		InputFile:   inputFile,
		Platforms:   results,
		Summary:     summary,
		SuccessRate: summary.SuccessRate(),
	}
}
