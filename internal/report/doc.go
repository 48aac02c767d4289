// Package report renders liveness results.
//
// This package contains the presentation layer:
//   - Palette: color styles, enabled or disabled per instance
//   - TextWriter: banner, summary table and per-link details for terminals
//   - ProgressPrinter: "Checking X..." progress lines driven by the runner
//   - JSONWriter: structured JSON output for tool integration
//   - MarkdownWriter: a shareable Markdown document
//
// Design decision: Colors are never global. Every writer receives a Palette
// built from a single "color enabled" flag, so tests and redirected output
// get plain text without touching package state.
package report
