// Package orderregistry provides the in-memory OrderRegistry adapter. The
// system has no persistence: the registry is a same-process index over live
// Order aggregates, safe for concurrent use.
package orderregistry

import (
	"context"
	"sync"

	"foodtiger/internal/core/domain/model/kernel"
	"foodtiger/internal/core/domain/model/order"
	"foodtiger/internal/pkg/errs"
)

// ErrOrderAlreadyRegistered is returned when adding an order whose
// identifier is already present.
var ErrOrderAlreadyRegistered = errs.NewValueIsInvalidError("order is already registered")

// Registry is an in-memory implementation of ports.OrderRegistry.
// It preserves registration order for all scans.
type Registry struct {
	mu     sync.RWMutex
	orders []*order.Order
	index  map[string]*order.Order
}

// NewRegistry creates an empty order registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]*order.Order),
	}
}

// Add registers an order for later lookup and dispatch.
func (r *Registry) Add(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := o.ID().String()
	if _, exists := r.index[key]; exists {
		return ErrOrderAlreadyRegistered
	}
	r.index[key] = o
	r.orders = append(r.orders, o)
	return nil
}

// Get returns the order with the given identifier, or an
// errs.ObjectNotFoundError when it is not registered.
func (r *Registry) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.index[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id.String())
	}
	return o, nil
}

// GetAll returns all registered orders in registration order.
func (r *Registry) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*order.Order(nil), r.orders...), nil
}

// GetAllUncompleted returns the registered orders not in a terminal status.
func (r *Registry) GetAllUncompleted(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	snapshot := append([]*order.Order(nil), r.orders...)
	r.mu.RUnlock()

	uncompleted := make([]*order.Order, 0, len(snapshot))
	for _, o := range snapshot {
		if !o.Status().IsTerminal() {
			uncompleted = append(uncompleted, o)
		}
	}
	return uncompleted, nil
}

// GetFirstReadyForPickup returns the first registered order in ready status
// with no rider assigned, or an errs.ObjectNotFoundError when there is none.
func (r *Registry) GetFirstReadyForPickup(_ context.Context) (*order.Order, error) {
	r.mu.RLock()
	snapshot := append([]*order.Order(nil), r.orders...)
	r.mu.RUnlock()

	for _, o := range snapshot {
		if o.Status() == order.Ready && o.Rider() == nil {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order", "ready for pickup")
}
