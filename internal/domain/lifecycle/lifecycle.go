// Package lifecycle holds shared process lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of long-lived
// components wired into the fx lifecycle.
const DefaultTimeout = 10 * time.Second
