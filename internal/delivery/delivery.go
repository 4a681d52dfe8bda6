// Package delivery defines the contract shared by the process entry
// points (API server, dispatch worker).
package delivery

import "context"

// Delivery is a long-running serving surface. Serve blocks until the
// server stops; shutdown is driven through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
