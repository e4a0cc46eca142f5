// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a serving surface (e.g., the HTTP API) started by main and
// stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
