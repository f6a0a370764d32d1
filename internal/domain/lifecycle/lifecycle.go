package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks of long-lived components.
const DefaultTimeout = 5 * time.Second
