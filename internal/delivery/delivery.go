// Package delivery defines the entry points that expose use cases to the outside world.
package delivery

import "context"

// Delivery is a long-running component started by the application, such as an HTTP server or a background job.
type Delivery interface {
	Serve(ctx context.Context) error
}
