package services

import (
	"errors"

	"foodtiger/internal/core/domain/model/order"
	"foodtiger/internal/core/domain/model/rider"
)

// Dispatch errors.
var (
	// ErrRiderNotFound is returned when no available rider can take the order.
	ErrRiderNotFound = errors.New("no available rider found")
	// ErrOrderNotReady is returned when the order is not awaiting pickup.
	ErrOrderNotReady = errors.New("order is not ready for pickup")
)

// RiderDispatcher is a domain service that matches a ready order with an
// available rider and starts the delivery workflow.
//
// Business rules:
//   - The order must be valid, in ready status, and have no rider assigned
//   - Riders are tried in the supplied order; the first available one that
//     accepts the delivery wins
//   - A rider that turns out to be engaged between the availability check
//     and acceptance is skipped, not treated as a failure
//
// Example usage:
//
//	dispatcher := services.NewRiderDispatcher()
//	assigned, err := dispatcher.Dispatch(order, riders)
//	if errors.Is(err, services.ErrRiderNotFound) {
//	    // every rider is currently engaged
//	    return
//	}
type RiderDispatcher struct{}

// NewRiderDispatcher creates a new RiderDispatcher instance.
func NewRiderDispatcher() RiderDispatcher {
	return RiderDispatcher{}
}

// Dispatch finds an available rider for the order and runs the delivery.
// Returns the rider that completed the delivery, ErrOrderNotReady when the
// order cannot be picked up, or ErrRiderNotFound when every rider is engaged.
func (d RiderDispatcher) Dispatch(o *order.Order, riders []*rider.Rider) (*rider.Rider, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if o.Status() != order.Ready || o.Rider() != nil {
		return nil, ErrOrderNotReady
	}

	for _, r := range riders {
		if err := r.Validate(); err != nil {
			return nil, err
		}

		if !r.IsAvailable() {
			continue
		}

		err := r.Deliver(o)
		if errors.Is(err, rider.ErrRiderUnavailable) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return r, nil
	}

	return nil, ErrRiderNotFound
}
