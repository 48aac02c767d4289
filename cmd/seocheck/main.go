// Package main provides the entry point for the seocheck CLI.
//
// seocheck reads a text file of links grouped by platform, checks whether
// every link is reachable, and prints per-platform and overall statistics.
//
// Usage:
//
//	seocheck <input_file>
//	seocheck --json -o report.json <input_file>
//
// See --help for all available options.
package main

// main is the entry point for seocheck.
func main() {
	Execute()
}
