package commands

import (
	"context"
	"errors"

	"foodtiger/internal/core/domain/services"
	"foodtiger/internal/core/ports"
	"foodtiger/internal/pkg/errs"
)

var (
	ErrNoAvailableRidersFound = errors.New("no available riders found")
	ErrNoOrderFound           = errors.New("no order awaiting pickup")
)

// DispatchRiderCommandHandler orchestrates the rider dispatch process.
// Finds the first order awaiting pickup and matches it with an available
// rider through the RiderDispatcher domain service, which runs the full
// delivery workflow synchronously.
//
// Example:
//
//	handler := NewDispatchRiderCommandHandler(orderRegistry, riderPool)
//	cmd := NewDispatchRiderCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("nothing awaiting pickup")
//	case errors.Is(err, ErrNoAvailableRidersFound):
//	    log.Println("all riders are engaged")
//	case err != nil:
//	    log.Printf("dispatch failed: %v", err)
//	}
type DispatchRiderCommandHandler struct {
	orders ports.OrderRegistry
	riders ports.RiderPool
}

// NewDispatchRiderCommandHandler creates a handler for rider dispatch.
// Requires the order registry and the rider pool.
func NewDispatchRiderCommandHandler(
	orders ports.OrderRegistry,
	riders ports.RiderPool,
) DispatchRiderCommandHandler {
	return DispatchRiderCommandHandler{
		orders: orders,
		riders: riders,
	}
}

// Handle processes the dispatch command. Returns specific errors for no
// orders awaiting pickup (ErrNoOrderFound) and no free riders
// (ErrNoAvailableRidersFound); both are expected business outcomes.
func (h DispatchRiderCommandHandler) Handle(ctx context.Context, cmd DispatchRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.orders.GetFirstReadyForPickup(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	riders, err := h.riders.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(riders) == 0 {
		return ErrNoAvailableRidersFound
	}

	if _, err = services.NewRiderDispatcher().Dispatch(o, riders); err != nil {
		return err
	}

	return nil
}
