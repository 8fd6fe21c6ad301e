// Package lifecycle holds timeouts shared by startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single lifecycle hook (ping, migrate, shutdown).
const DefaultTimeout = 10 * time.Second
