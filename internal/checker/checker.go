package checker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/seocheck/internal/config"
	"github.com/nao1215/seocheck/internal/model"
)

// URLProber probes a single URL. *Prober implements it.
type URLProber interface {
	Probe(ctx context.Context, raw string) ProbeResult
}

// Checker probes all URLs of one platform with bounded concurrency.
//
// Design decision: We use errgroup.SetLimit rather than a long-lived worker
// pool. A fresh group per platform gives the "all probes of this platform
// are done" barrier for free and leaves nothing running between platforms.
type Checker struct {
	prober      URLProber
	concurrency int
	logger      *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithConcurrency sets the maximum number of probes in flight.
// Non-positive values keep the default.
func WithConcurrency(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithLogger sets the logger for platform-level events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// New creates a Checker that uses prober for each URL.
func New(prober URLProber, opts ...Option) *Checker {
	c := &Checker{
		prober:      prober,
		concurrency: config.DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// CheckPlatform probes every URL of group and blocks until all are done.
//
// Links are appended in completion order. A platform without URLs returns
// an empty result without probing anything. Cancelling ctx aborts in-flight
// requests; the affected links are recorded as errors.
func (c *Checker) CheckPlatform(ctx context.Context, group *model.PlatformGroup) *model.PlatformResult {
	result := model.NewPlatformResult(group.Name)
	if len(group.URLs) == 0 {
		return result
	}

	startTime := time.Now()
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(c.concurrency)

	for _, raw := range group.URLs {
		g.Go(func() error {
			link := c.prober.Probe(ctx, raw).LinkResult()

			mu.Lock()
			result.Add(link)
			mu.Unlock()

			// Probe failures are folded into the result, never returned.
			return nil
		})
	}

	_ = g.Wait() //nolint:errcheck // Goroutines never return errors

	c.logger.Info("platform checked",
		"platform", group.Name,
		"total", result.Total,
		"active", result.Active,
		"error", result.Error,
		"elapsed", time.Since(startTime),
	)

	return result
}
