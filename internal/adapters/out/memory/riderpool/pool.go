// Package riderpool provides the in-memory RiderPool adapter: a same-process
// roster of riders, safe for concurrent use.
package riderpool

import (
	"context"
	"sync"

	"foodtiger/internal/core/domain/model/rider"
	"foodtiger/internal/pkg/errs"
)

// ErrRiderAlreadyRegistered is returned when adding a rider that is already
// in the pool.
var ErrRiderAlreadyRegistered = errs.NewValueIsInvalidError("rider is already registered")

// Pool is an in-memory implementation of ports.RiderPool.
// It preserves registration order for all scans.
type Pool struct {
	mu     sync.RWMutex
	riders []*rider.Rider
}

// NewPool creates an empty rider pool.
func NewPool() *Pool {
	return &Pool{}
}

// Add registers a rider.
func (p *Pool) Add(_ context.Context, r *rider.Rider) error {
	if err := r.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, existing := range p.riders {
		if existing == r {
			return ErrRiderAlreadyRegistered
		}
	}
	p.riders = append(p.riders, r)
	return nil
}

// GetAll returns all registered riders in registration order.
func (p *Pool) GetAll(_ context.Context) ([]*rider.Rider, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]*rider.Rider(nil), p.riders...), nil
}

// GetAllAvailable returns the riders currently accepting deliveries.
func (p *Pool) GetAllAvailable(_ context.Context) ([]*rider.Rider, error) {
	p.mu.RLock()
	snapshot := append([]*rider.Rider(nil), p.riders...)
	p.mu.RUnlock()

	available := make([]*rider.Rider, 0, len(snapshot))
	for _, r := range snapshot {
		if r.IsAvailable() {
			available = append(available, r)
		}
	}
	return available, nil
}
