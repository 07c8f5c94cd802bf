// Package lifecycle holds process-wide start/stop settings.
package lifecycle

import "time"

// DefaultTimeout bounds start hooks (database ping) and graceful shutdown.
const DefaultTimeout = 10 * time.Second
