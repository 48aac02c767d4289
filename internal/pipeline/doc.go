// Package pipeline drives a liveness run across all platforms.
//
// Platforms are processed strictly in input order. Each platform is handed to
// a PlatformChecker, which owns the only parallelism in the system, and the
// Runner waits for it to finish before pausing and moving on.
//
// Design decision: We keep the sequential driver separate from the checker
// because:
// 1. The checker stays a pure "one platform in, one result out" unit
// 2. Progress reporting hangs off the Observer without touching the checker
// 3. Cancellation and the inter-platform pause live in one place
package pipeline
