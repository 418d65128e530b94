// Package lifecycle holds shared timing constants for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start or stop hook so a stuck dependency cannot hang shutdown.
const DefaultTimeout = 10 * time.Second
