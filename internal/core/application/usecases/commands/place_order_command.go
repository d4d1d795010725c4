// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: a guard-validated command value
// object plus a handler that coordinates domain objects and registries.
package commands

import (
	"errors"

	"foodtiger/internal/core/domain/model/customer"
	"foodtiger/internal/core/domain/model/restaurant"
	"foodtiger/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCustomerIsRequired   = errors.New("customer is required")
	ErrRestaurantIsRequired = errors.New("restaurant is required")
	ErrItemsAreRequired     = errors.New("at least one item is required")
)

// PlaceOrderCommand represents a customer's request to order items from a
// restaurant.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(customer, restaurant, []string{"Butter Chicken", "Rice"})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(orderRegistry)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customer   *customer.Customer
	restaurant *restaurant.Restaurant
	items      []string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that customer and restaurant are present and at least one item
// was requested.
func NewPlaceOrderCommand(
	c *customer.Customer,
	r *restaurant.Restaurant,
	items []string,
) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomer(c),
		orderCommand.setRestaurant(r),
		orderCommand.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Customer returns the ordering customer.
func (c PlaceOrderCommand) Customer() *customer.Customer {
	return c.customer
}

// Restaurant returns the restaurant the order goes to.
func (c PlaceOrderCommand) Restaurant() *restaurant.Restaurant {
	return c.restaurant
}

// Items returns the requested item names.
func (c PlaceOrderCommand) Items() []string {
	return c.items
}

func (c *PlaceOrderCommand) setCustomer(cu *customer.Customer) error {
	if cu == nil {
		return ErrCustomerIsRequired
	}
	c.customer = cu
	return nil
}

func (c *PlaceOrderCommand) setRestaurant(r *restaurant.Restaurant) error {
	if r == nil {
		return ErrRestaurantIsRequired
	}
	c.restaurant = r
	return nil
}

func (c *PlaceOrderCommand) setItems(items []string) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	c.items = items
	return nil
}
