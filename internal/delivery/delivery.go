// Package delivery defines the contract all transport surfaces implement.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) started
// by the application container.
type Delivery interface {
	Serve(ctx context.Context) error
}
