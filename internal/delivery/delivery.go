// Package delivery defines the contract served by transport implementations.
package delivery

import "context"

// Delivery is a long-running transport (an HTTP server) started by main.
type Delivery interface {
	// Serve blocks until the transport stops or the context is cancelled.
	Serve(ctx context.Context) error
}
