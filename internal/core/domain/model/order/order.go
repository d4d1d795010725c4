package order

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"foodtiger/internal/core/domain/model/kernel"
	"foodtiger/internal/pkg/errs"
	"foodtiger/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrInvalidTransition is the unwrap target of InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid status change")
	// ErrCustomerIsRequired is returned when creating an order without a customer.
	ErrCustomerIsRequired = errs.NewValueIsRequiredError("customer")
	// ErrRestaurantIsRequired is returned when creating an order without a restaurant.
	ErrRestaurantIsRequired = errs.NewValueIsRequiredError("restaurant")
	// ErrItemsAreRequired is returned when creating an order with no items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrRiderIsRequired is returned when assigning a nil rider.
	ErrRiderIsRequired = errs.NewValueIsRequiredError("rider")
	// ErrRiderAlreadyAssigned is returned when assigning a rider to an order
	// that already has one. The rider reference never changes once set.
	ErrRiderAlreadyAssigned = errors.New("order already has a rider assigned")
)

// InvalidTransitionError reports a status change that is not permitted by
// the transition table. The order's state is left unchanged and no fan-out
// is performed.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status change: %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Order is the aggregate root tracking one delivery request from placement
// to completion or cancellation.
//
// Order follows these invariants:
//   - Status is always a member of the fixed status set
//   - Status changes only through UpdateStatus (plus the AssignRider side
//     channel) and only along the transition table
//   - The item list is immutable after creation and order-preserving
//   - The rider reference is nil until assignment and never changes once set
//   - Every accepted transition fans out synchronously to customer,
//     restaurant, and rider (if assigned), in that fixed order
//
// Participants are held as non-owning Notifiable references; the Order is
// owned by whichever workflow created it.
//
// Transitions on one order are serialized by an internal mutex. The mutex is
// released before fan-out, so participant reactions may reenter UpdateStatus
// on the same call stack without deadlocking.
type Order struct {
	id         kernel.OrderID
	items      []string
	createdAt  time.Time
	customer   Notifiable
	restaurant Notifiable

	mu     sync.Mutex
	status Status
	rider  Notifiable

	events EventLog
	guard  guard.ConstructorGuard
}

// NewOrder creates an order in the placed status. This is the only way to
// create a valid Order.
//
// Parameters:
//   - id: unique order identifier (externally generated)
//   - customer: the ordering customer (mandatory)
//   - restaurant: the preparing restaurant (mandatory)
//   - items: ordered list of item names (at least one)
//   - events: trace sink for lifecycle events; nil means no logging
//
// The item list is copied, so later mutation of the caller's slice does not
// affect the order.
func NewOrder(
	id kernel.OrderID,
	customer Notifiable,
	restaurant Notifiable,
	items []string,
	events EventLog,
) (*Order, error) {
	if events == nil {
		events = NopEventLog{}
	}

	o := &Order{
		status:    Placed,
		createdAt: time.Now(),
		events:    events,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setRestaurant(restaurant),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Items returns a copy of the ordered item list.
func (o *Order) Items() []string {
	items := make([]string, len(o.items))
	copy(items, o.items)
	return items
}

// ItemSummary returns the item names joined with commas, for trace output.
func (o *Order) ItemSummary() string {
	return strings.Join(o.items, ", ")
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Customer returns the ordering customer.
func (o *Order) Customer() Notifiable {
	return o.customer
}

// Restaurant returns the preparing restaurant.
func (o *Order) Restaurant() Notifiable {
	return o.restaurant
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// Rider returns the assigned rider, or nil if no rider is assigned yet.
func (o *Order) Rider() Notifiable {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rider
}

// IsActive reports whether the order is still in flight, i.e. not in a
// terminal status.
func (o *Order) IsActive() bool {
	return !o.Status().IsTerminal()
}

// UpdateStatus is the single authoritative status mutator. It validates the
// requested transition against the transition table; if permitted it commits
// the change and synchronously notifies every attached participant, otherwise
// it leaves the order unchanged, records a skipped-transition event, and
// returns an InvalidTransitionError.
//
// The rejection is non-fatal: callers inside notification reactions may
// ignore the error, the outcome stays observable through the event log.
func (o *Order) UpdateStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	o.mu.Lock()
	prev := o.status
	committed, err := prev.TransitionTo(next)
	if err != nil {
		o.mu.Unlock()
		o.events.Warnf("order %s invalid status change: %s to %s", o.id, prev, next)
		return err
	}
	o.status = committed
	rider := o.rider
	o.mu.Unlock()

	o.events.Infof("order %s status changed: %s to %s", o.id, prev, committed)
	o.notifyParties(rider)
	return nil
}

// AssignRider sets the order's rider reference and moves the order to
// assigned_to_rider, fanning out like any accepted transition.
//
// This is the only way to reach assigned_to_rider: the transition table has
// no edge into it, so the commit here deliberately bypasses the table lookup
// for the target. The source state is still checked: a terminal order
// rejects assignment with an InvalidTransitionError, like any other attempt
// to move it. Assignment happens at most once per order; a second call
// returns ErrRiderAlreadyAssigned and changes nothing.
func (o *Order) AssignRider(rider Notifiable) error {
	if rider == nil {
		return ErrRiderIsRequired
	}

	o.mu.Lock()
	if o.rider != nil {
		o.mu.Unlock()
		return ErrRiderAlreadyAssigned
	}
	prev := o.status
	if prev.IsTerminal() {
		o.mu.Unlock()
		o.events.Warnf("order %s invalid status change: %s to %s", o.id, prev, AssignedToRider)
		return &InvalidTransitionError{From: prev, To: AssignedToRider}
	}
	o.rider = rider
	o.status = AssignedToRider
	o.mu.Unlock()

	o.events.Infof("order %s status changed: %s to %s", o.id, prev, AssignedToRider)
	o.notifyParties(rider)
	return nil
}

// notifyParties fans the current state out to every attached participant in
// the fixed order: customer, restaurant, rider. The rider reference is
// snapshotted by the caller while holding the mutex so the fan-out matches
// the transition that triggered it.
func (o *Order) notifyParties(rider Notifiable) {
	o.customer.ReceiveOrderUpdate(o)
	o.restaurant.ReceiveOrderUpdate(o)
	if rider != nil {
		rider.ReceiveOrderUpdate(o)
	}
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Notifiable) error {
	if customer == nil {
		return ErrCustomerIsRequired
	}
	o.customer = customer
	return nil
}

func (o *Order) setRestaurant(restaurant Notifiable) error {
	if restaurant == nil {
		return ErrRestaurantIsRequired
	}
	o.restaurant = restaurant
	return nil
}

func (o *Order) setItems(items []string) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	o.items = make([]string, len(items))
	copy(o.items, items)
	return nil
}
