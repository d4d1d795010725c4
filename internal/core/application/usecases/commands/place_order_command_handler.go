package commands

import (
	"context"

	"foodtiger/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// The customer drives the order through its synchronous confirmation and
// preparation chain; the resulting order is then registered for dispatch.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(orderRegistry)
//	cmd, _ := NewPlaceOrderCommand(customer, restaurant, []string{"Pizza"})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// The order is registered and, having reached ready, awaits a rider.
type PlaceOrderCommandHandler struct {
	orders ports.OrderRegistry
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderRegistry to register placed orders in.
func NewPlaceOrderCommandHandler(orders ports.OrderRegistry) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		orders: orders,
	}
}

// Handle processes the order placement command. By the time PlaceOrder
// returns, the fan-out chain has normally carried the order to ready.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := cmd.Customer().PlaceOrder(cmd.Restaurant(), cmd.Items())
	if err != nil {
		return err
	}

	return h.orders.Add(ctx, o)
}
