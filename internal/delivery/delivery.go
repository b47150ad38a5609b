// Package delivery defines the contract every transport entrypoint fulfils.
package delivery

import "context"

// Delivery is a long-running transport server started by the application
// lifecycle. Serve blocks until the server stops or the context is done.
type Delivery interface {
	Serve(ctx context.Context) error
}
