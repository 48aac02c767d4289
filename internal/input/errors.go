package input

import "errors"

// Input file errors.
// Both are fatal: the caller reports them and exits with status 1.
var (
	// ErrInputNotFound is returned when the input file does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrInputUnreadable is returned when the input file exists but cannot be read.
	ErrInputUnreadable = errors.New("failed to read input file")
)

// ErrNoPlatforms is returned by callers when a parsed file contains no
// platform headers. Parse itself treats an empty result as valid.
var ErrNoPlatforms = errors.New("no platform data found in input file")
