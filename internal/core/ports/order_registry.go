// Package ports defines the driven-side interfaces the application core
// depends on. Adapters implement them; handlers and jobs consume them.
package ports

import (
	"context"

	"foodtiger/internal/core/domain/model/kernel"
	"foodtiger/internal/core/domain/model/order"
)

// OrderRegistry is the collection of orders known to the application. It
// holds non-owning references: orders are created by domain workflows and
// registered for lookup and dispatch.
//
// Implementations return errs.ObjectNotFoundError (matching
// errs.ErrObjectNotFound) for missing orders.
type OrderRegistry interface {
	// Add registers an order. Registering the same identifier twice is an error.
	Add(ctx context.Context, o *order.Order) error

	// Get returns the order with the given identifier.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll returns all registered orders in registration order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllUncompleted returns the registered orders that are not in a
	// terminal status, in registration order.
	GetAllUncompleted(ctx context.Context) ([]*order.Order, error)

	// GetFirstReadyForPickup returns the first registered order that is in
	// ready status with no rider assigned.
	GetFirstReadyForPickup(ctx context.Context) (*order.Order, error)
}
