// Package model defines the core data structures used throughout seocheck.
//
// This package contains the following main types:
//   - PlatformGroup / PlatformList: the parsed input file
//   - LinkResult: the outcome of probing a single URL
//   - PlatformResult: per-platform counts and link outcomes
//   - Summary: aggregate totals derived from platform results
//   - RunReport: the serializable document for machine-readable output
//
// Design decision: We keep models in their own package so the parser, the
// checker and the report writers can share them without import cycles.
package model
