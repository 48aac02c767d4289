package checker

import "errors"

// Probe diagnostics for URLs that are rejected without a network call.
var (
	// ErrUnavailable marks the "unavailable" placeholder used in link lists.
	ErrUnavailable = errors.New("link marked unavailable")

	// ErrEmptyURL marks an empty link.
	ErrEmptyURL = errors.New("empty link")

	// ErrStatus is wrapped when the final response status is 400 or above.
	ErrStatus = errors.New("unsuccessful response status")
)
