package model

// PlatformResult holds the liveness results for one platform.
//
// Invariant: Active + Error == Total == len(Links).
// Links are ordered by probe completion, not by input order.
type PlatformResult struct {
	// Platform is the platform name.
	Platform string `json:"platform"`

	// Total is the number of URLs checked.
	Total int `json:"total"`

	// Active is the number of URLs classified as active.
	Active int `json:"active"`

	// Error is the number of URLs classified as error.
	Error int `json:"error"`

	// Links contains one entry per checked URL.
	Links []LinkResult `json:"links"`
}

// NewPlatformResult creates an empty result for the named platform.
func NewPlatformResult(platform string) *PlatformResult {
	return &PlatformResult{
		Platform: platform,
		Links:    make([]LinkResult, 0),
	}
}

// Add records a link outcome and updates the counters.
func (r *PlatformResult) Add(link LinkResult) {
	r.Links = append(r.Links, link)
	r.Total++
	if link.Status.IsActive() {
		r.Active++
		return
	}
	r.Error++
}

// Health describes how a platform fared overall.
type Health int

const (
	// HealthAllActive means no link failed (including platforms with no links).
	HealthAllActive Health = iota
	// HealthPartial means some links are active and some failed.
	HealthPartial
	// HealthAllError means every link failed.
	HealthAllError
)

// Health classifies the platform for presentation.
func (r *PlatformResult) Health() Health {
	switch {
	case r.Error == 0:
		return HealthAllActive
	case r.Active > 0:
		return HealthPartial
	default:
		return HealthAllError
	}
}
