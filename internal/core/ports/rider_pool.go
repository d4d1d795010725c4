package ports

import (
	"context"

	"foodtiger/internal/core/domain/model/rider"
)

// RiderPool is the collection of riders known to the application.
type RiderPool interface {
	// Add registers a rider. Registering the same rider twice is an error.
	Add(ctx context.Context, r *rider.Rider) error

	// GetAll returns all registered riders in registration order.
	GetAll(ctx context.Context) ([]*rider.Rider, error)

	// GetAllAvailable returns the registered riders whose availability flag
	// currently permits a new delivery, in registration order.
	GetAllAvailable(ctx context.Context) ([]*rider.Rider, error)
}
