// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks (DB ping, HTTP drain).
const DefaultTimeout = 10 * time.Second
