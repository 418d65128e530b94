// Package delivery holds the entry points that drive the usecases.
package delivery

import "context"

// Delivery is a long-running entry point started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
