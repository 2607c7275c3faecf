// Package privilege answers whether the current process can read stored
// wireless secrets. Key retrieval needs an elevated token, so the check runs
// before any tool invocation.
package privilege

import "errors"

var (
	// ErrUnsupportedPlatform is returned on hosts without the wireless
	// tool or an elevation concept this binary understands.
	ErrUnsupportedPlatform = errors.New("wireless profile extraction is only supported on Windows")
)
