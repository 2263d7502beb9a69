// Package delivery defines the contract every transport implementation
// satisfies.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...). Serve
// blocks until the transport stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
