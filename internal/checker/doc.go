// Package checker implements the URL liveness check.
//
// A Prober classifies one URL as active or error with a HEAD request and a
// GET fallback. A Checker fans the URLs of one platform out to a bounded pool
// of probes and collects the outcomes in completion order.
//
// Per-URL failures never escape this package as errors: they are folded into
// the Error link status. The underlying cause is kept on ProbeResult for debug
// logging only.
package checker
