// Package customer provides the Customer participant: the originator of
// orders, notified on every status change but never triggering further
// transitions itself.
package customer

import (
	"errors"
	"fmt"
	"sync"

	"foodtiger/internal/core/domain/model/kernel"
	"foodtiger/internal/core/domain/model/order"
	"foodtiger/internal/core/domain/model/restaurant"
	"foodtiger/internal/pkg/errs"
	"foodtiger/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrIDIsRequired is returned when creating a customer without an identifier.
	ErrIDIsRequired = errs.NewValueIsRequiredError("customer id")
	// ErrNameIsRequired is returned when creating a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrContactIsRequired is returned when creating a customer without contact info.
	ErrContactIsRequired = errs.NewValueIsRequiredError("contact")
	// ErrCustomerIsNotConstructed is returned when using an improperly
	// initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer is a participant that places orders and tracks them through
// notifications. It holds a non-owning history of the orders it placed.
type Customer struct {
	id      string
	name    string
	contact string

	mu     sync.Mutex
	orders []*order.Order

	events order.EventLog
	guard  guard.ConstructorGuard
}

// NewCustomer creates a Customer with the given identity.
// A nil events sink disables the trace.
func NewCustomer(id, name, contact string, events order.EventLog) (*Customer, error) {
	if events == nil {
		events = order.NopEventLog{}
	}

	c := &Customer{
		events: events,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setContact(contact),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer was created via NewCustomer.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's identifier.
func (c *Customer) ID() string {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Contact returns the customer's contact info.
func (c *Customer) Contact() string {
	return c.contact
}

// Info returns a one-line description of the customer.
func (c *Customer) Info() string {
	return fmt.Sprintf("Customer: %s (%s)", c.name, c.contact)
}

// OrderHistory returns a copy of the orders this customer has placed, in
// placement order.
func (c *Customer) OrderHistory() []*order.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*order.Order(nil), c.orders...)
}

// PlaceOrder creates a new order for the given items at the given restaurant.
//
// The order starts in placed, joins the customer's history, and is
// immediately confirmed, which synchronously drives the restaurant's full
// preparation workflow through the fan-out chain. The restaurant is then
// notified directly once more; by that point the order has normally reached
// ready, so the restaurant announces pickup readiness a second time. The
// extra notification matches the behavior this system is modeled on.
//
// Returns the created order; the caller owns it.
func (c *Customer) PlaceOrder(rest *restaurant.Restaurant, items []string) (*order.Order, error) {
	if err := rest.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(kernel.GenerateOrderID(), c, rest, items, c.events)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.orders = append(c.orders, o)
	c.mu.Unlock()

	c.events.Infof("%s placed order at %s: %s", c.name, rest.Name(), o.ItemSummary())

	if err := o.UpdateStatus(order.Confirmed); err != nil {
		return nil, err
	}

	rest.ReceiveOrderUpdate(o)

	return o, nil
}

// SendNotification emits a message attributed to this customer.
func (c *Customer) SendNotification(message string) {
	c.events.Infof("SMS to %s (%s): %s", c.name, c.contact, message)
}

// ReceiveOrderUpdate always notifies the customer of the new status and
// never triggers further transitions.
func (c *Customer) ReceiveOrderUpdate(o *order.Order) {
	c.SendNotification(fmt.Sprintf("your order %s is now: %s", o.ID(), o.Status()))
}

func (c *Customer) setID(id string) error {
	if id == "" {
		return ErrIDIsRequired
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setContact(contact string) error {
	if contact == "" {
		return ErrContactIsRequired
	}
	c.contact = contact
	return nil
}
