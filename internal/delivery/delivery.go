// Package delivery defines the transports the application serves requests through.
package delivery

import "context"

// Delivery is a long-running transport started after the fx graph is built.
type Delivery interface {
	Serve(ctx context.Context) error
}
