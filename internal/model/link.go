package model

// LinkStatus is the liveness classification of a single URL.
type LinkStatus string

const (
	// LinkStatusActive means the URL answered with a final status below 400.
	LinkStatusActive LinkStatus = "active"
	// LinkStatusError means the URL was unreachable, answered with 400 or
	// above, or was the "unavailable" sentinel.
	LinkStatusError LinkStatus = "error"
)

// String returns the string representation of the LinkStatus.
func (s LinkStatus) String() string {
	return string(s)
}

// IsActive reports whether the status is LinkStatusActive.
func (s LinkStatus) IsActive() bool {
	return s == LinkStatusActive
}

// LinkResult is the outcome of probing one URL.
type LinkResult struct {
	// URL is the probed URL. Schemeless input is stored with the https://
	// prefix that was used for the request. Sentinel and empty entries are
	// stored as written.
	URL string `json:"url"`

	// Status is the liveness classification.
	Status LinkStatus `json:"status"`

	// StatusCode is the final HTTP status code, or 0 when no response
	// was received.
	StatusCode int `json:"status_code,omitempty"`
}
