package checker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/nao1215/seocheck/internal/config"
	"github.com/nao1215/seocheck/internal/model"
)

const (
	// unavailableMarker is the placeholder for links that do not exist yet.
	unavailableMarker = "unavailable"

	// defaultScheme is prepended to links written without a scheme.
	defaultScheme = "https://"

	// maxDrainSize bounds how much of a response body is read before closing,
	// so keep-alive connections can be reused without downloading whole pages.
	maxDrainSize = 64 * 1024
)

// ProbeResult is the outcome of probing one URL.
type ProbeResult struct {
	// URL is the normalized URL that was requested, or the raw input when no
	// request was made.
	URL string

	// StatusCode is the final response status, or 0 without a response.
	StatusCode int

	// Err is the diagnostic for a failed probe. It is nil for active links.
	Err error
}

// Active reports whether the probe classified the URL as active.
func (r ProbeResult) Active() bool {
	return r.Err == nil && r.StatusCode > 0 && r.StatusCode < http.StatusBadRequest
}

// LinkResult converts the probe outcome into the aggregated model form.
// The diagnostic is dropped.
func (r ProbeResult) LinkResult() model.LinkResult {
	status := model.LinkStatusError
	if r.Active() {
		status = model.LinkStatusActive
	}
	return model.LinkResult{
		URL:        r.URL,
		Status:     status,
		StatusCode: r.StatusCode,
	}
}

// Prober checks whether a single URL is reachable.
//
// Design decision: We accept an external http.Client so tests can swap the
// transport. The per-request timeout is applied through the request context,
// which keeps it independent of whatever Timeout the client carries.
type Prober struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
	limiter   *rate.Limiter
	logger    *slog.Logger
}

// ProberOption configures a Prober.
type ProberOption func(*Prober)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(client *http.Client) ProberOption {
	return func(p *Prober) {
		if client != nil {
			p.client = client
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ProberOption {
	return func(p *Prober) {
		if ua != "" {
			p.userAgent = ua
		}
	}
}

// WithTimeout sets the timeout for each HEAD or GET request.
func WithTimeout(timeout time.Duration) ProberOption {
	return func(p *Prober) {
		if timeout > 0 {
			p.timeout = timeout
		}
	}
}

// WithRequestsPerSecond caps how many probes may start per second.
// Zero or negative disables pacing.
func WithRequestsPerSecond(rps float64) ProberOption {
	return func(p *Prober) {
		if rps > 0 {
			p.limiter = rate.NewLimiter(rate.Limit(rps), 1)
			return
		}
		p.limiter = nil
	}
}

// WithProberLogger sets the logger used for probe diagnostics.
func WithProberLogger(logger *slog.Logger) ProberOption {
	return func(p *Prober) {
		p.logger = logger
	}
}

// NewProber creates a Prober with default settings.
// Redirects are followed by the default http.Client policy (up to 10 hops).
func NewProber(opts ...ProberOption) *Prober {
	p := &Prober{
		client:    &http.Client{},
		userAgent: config.DefaultUserAgent,
		timeout:   config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// Probe classifies raw as active or error.
//
// The "unavailable" placeholder and empty links fail without a request.
// Links without an http:// or https:// scheme are requested with https://.
// A HEAD request is tried first; when it answers 400 or above (servers that
// reject HEAD included) the same URL is retried once with GET. Any transport
// failure is reported through ProbeResult.Err and never returned as an error.
func (p *Prober) Probe(ctx context.Context, raw string) ProbeResult {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ProbeResult{URL: raw, Err: ErrEmptyURL}
	}
	if strings.EqualFold(trimmed, unavailableMarker) {
		return ProbeResult{URL: raw, Err: ErrUnavailable}
	}

	target := NormalizeURL(trimmed)

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return p.failed(target, 0, err)
		}
	}

	status, err := p.request(ctx, http.MethodHead, target)
	if err != nil {
		return p.failed(target, 0, err)
	}

	if status >= http.StatusBadRequest {
		p.logger.Debug("HEAD rejected, retrying with GET", "url", target, "status", status)
		status, err = p.request(ctx, http.MethodGet, target)
		if err != nil {
			return p.failed(target, 0, err)
		}
	}

	if status >= http.StatusBadRequest {
		return p.failed(target, status, fmt.Errorf("%w: %d", ErrStatus, status))
	}

	return ProbeResult{URL: target, StatusCode: status}
}

// request performs one request and returns the final status code.
// The body is drained up to maxDrainSize and closed.
func (p *Prober) request(ctx context.Context, method, target string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainSize)) //nolint:errcheck // Draining is best effort

	return resp.StatusCode, nil
}

// failed builds an error result and logs the diagnostic at debug level.
func (p *Prober) failed(target string, status int, err error) ProbeResult {
	p.logger.Debug("probe failed", "url", target, "status", status, "error", err)
	return ProbeResult{URL: target, StatusCode: status, Err: err}
}

// NormalizeURL prepends https:// when link has no http:// or https:// scheme.
// The scheme check is case-insensitive.
func NormalizeURL(link string) string {
	lower := strings.ToLower(link)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return link
	}
	return defaultScheme + link
}
