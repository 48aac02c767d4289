package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/seocheck/internal/config"
	"github.com/nao1215/seocheck/internal/model"
)

// PlatformChecker checks all URLs of one platform.
// *checker.Checker implements it.
type PlatformChecker interface {
	CheckPlatform(ctx context.Context, group *model.PlatformGroup) *model.PlatformResult
}

// Observer receives progress events from the Runner.
// Events are delivered from the Runner's goroutine, one platform at a time.
type Observer interface {
	// PlatformStarted is called before a platform is checked.
	PlatformStarted(name string)

	// PlatformFinished is called after all URLs of a platform are checked.
	PlatformFinished(result *model.PlatformResult)
}

// nopObserver discards all events.
type nopObserver struct{}

func (nopObserver) PlatformStarted(string)                 {}
func (nopObserver) PlatformFinished(*model.PlatformResult) {}

// Runner checks platforms one after another.
type Runner struct {
	// checker performs the per-platform check.
	checker PlatformChecker

	// observer receives progress events.
	observer Observer

	// delay is the pause between two platforms.
	delay time.Duration

	// logger is used for run-level logging.
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithObserver sets the progress observer.
func WithObserver(observer Observer) Option {
	return func(r *Runner) {
		if observer != nil {
			r.observer = observer
		}
	}
}

// WithDelay sets the pause between platforms. Zero disables the pause.
func WithDelay(delay time.Duration) Option {
	return func(r *Runner) {
		if delay >= 0 {
			r.delay = delay
		}
	}
}

// WithLogger sets a custom logger for the runner.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// New creates a Runner that uses checker for each platform.
func New(checker PlatformChecker, opts ...Option) *Runner {
	r := &Runner{
		checker:  checker,
		observer: nopObserver{},
		delay:    config.DefaultPlatformDelay,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// Run checks every platform of list in order and returns one result per
// platform, in the same order.
//
// The pause is applied between platforms, not after the last one. When ctx
// is cancelled, Run stops before the next platform (or during the pause) and
// returns the results collected so far together with ctx.Err(). A platform
// that was in progress when the cancellation arrived is not included.
func (r *Runner) Run(ctx context.Context, list *model.PlatformList) ([]*model.PlatformResult, error) {
	groups := list.Groups()
	results := make([]*model.PlatformResult, 0, len(groups))

	r.logger.Info("starting run",
		"platforms", len(groups),
		"urls", list.TotalURLs(),
	)
	startTime := time.Now()

	for i, group := range groups {
		if err := ctx.Err(); err != nil {
			r.logger.Warn("run cancelled", "next_platform", group.Name, "reason", err)
			return results, err
		}

		r.observer.PlatformStarted(group.Name)
		result := r.checker.CheckPlatform(ctx, group)

		// In-flight probes were aborted, so the counts are not meaningful.
		if err := ctx.Err(); err != nil {
			r.logger.Warn("run cancelled", "platform", group.Name, "reason", err)
			return results, err
		}

		r.observer.PlatformFinished(result)
		results = append(results, result)

		if i < len(groups)-1 {
			if err := r.pause(ctx); err != nil {
				return results, err
			}
		}
	}

	r.logger.Info("run complete",
		"platforms", len(results),
		"elapsed", time.Since(startTime),
	)

	return results, nil
}

// pause waits for the inter-platform delay or until ctx is done.
func (r *Runner) pause(ctx context.Context) error {
	if r.delay <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(r.delay):
		return nil
	}
}
