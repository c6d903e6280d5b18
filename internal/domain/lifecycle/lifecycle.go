// Package lifecycle holds shared timing constants for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx lifecycle hooks such as DB pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second
