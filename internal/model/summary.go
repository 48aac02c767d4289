package model

import "fmt"

// zeroSuccessRate is printed when there are no links at all.
// It is intentionally not "0.0%".
const zeroSuccessRate = "0%"

// Summary is the aggregate of all platform results.
// It is derived on demand and never stored between runs.
type Summary struct {
	// Total is the number of links across all platforms.
	Total int `json:"total"`

	// Active is the number of active links across all platforms.
	Active int `json:"active"`

	// Error is the number of failed links across all platforms.
	Error int `json:"error"`
}

// Summarize sums the counters of the given platform results.
func Summarize(results []*PlatformResult) Summary {
	var s Summary
	for _, r := range results {
		if r == nil {
			continue
		}
		s.Total += r.Total
		s.Active += r.Active
		s.Error += r.Error
	}
	return s
}

// SuccessRate returns the active percentage with one decimal digit,
// e.g. "70.0%". When there are no links it returns "0%" without dividing.
func (s Summary) SuccessRate() string {
	return FormatSuccessRate(s.Active, s.Total)
}

// FormatSuccessRate formats active/total as a percentage.
func FormatSuccessRate(active, total int) string {
	if total <= 0 {
		return zeroSuccessRate
	}
	return fmt.Sprintf("%.1f%%", float64(active)/float64(total)*100)
}
