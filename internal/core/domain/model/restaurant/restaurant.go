// Package restaurant provides the Restaurant participant: a business that
// reacts to order notifications by preparing confirmed orders and announcing
// pickup readiness.
package restaurant

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"foodtiger/internal/core/domain/model/order"
	"foodtiger/internal/pkg/errs"
	"foodtiger/internal/pkg/guard"
)

// Domain errors for restaurant operations.
var (
	// ErrNameIsRequired is returned when creating a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAddressIsRequired is returned when creating a restaurant without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrPhoneIsRequired is returned when creating a restaurant without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrPrepTimeIsInvalid is returned for a negative preparation delay.
	ErrPrepTimeIsInvalid = errs.NewValueIsInvalidError("preparation time")
	// ErrRestaurantIsNotConstructed is returned when using an improperly
	// initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Restaurant is a participant that prepares orders. On a confirmed order it
// runs the preparation workflow, advancing the order through preparing and,
// after the configured preparation delay, ready. On a ready order it only
// announces pickup readiness.
//
// The restaurant keeps a working set of orders currently in preparation.
// The set is pure bookkeeping; the order state machine never consults it.
type Restaurant struct {
	name    string
	address string
	phone   string

	// prepTime simulates preparation work between preparing and ready.
	prepTime time.Duration

	mu     sync.Mutex
	inPrep map[string]*order.Order

	events order.EventLog
	guard  guard.ConstructorGuard
}

// NewRestaurant creates a Restaurant with the given identity and simulated
// preparation delay. The delay must not be negative; zero disables it
// (useful in tests). A nil events sink disables the trace.
func NewRestaurant(name, address, phone string, prepTime time.Duration, events order.EventLog) (*Restaurant, error) {
	if events == nil {
		events = order.NopEventLog{}
	}

	r := &Restaurant{
		prepTime: prepTime,
		inPrep:   make(map[string]*order.Order),
		events:   events,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setName(name),
		r.setAddress(address),
		r.setPhone(phone),
		validatePrepTime(prepTime),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Restaurant was created via NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// Name returns the restaurant's name.
func (r *Restaurant) Name() string {
	return r.name
}

// Address returns the restaurant's street address.
func (r *Restaurant) Address() string {
	return r.address
}

// Phone returns the restaurant's phone number.
func (r *Restaurant) Phone() string {
	return r.phone
}

// Info returns a one-line description of the restaurant.
func (r *Restaurant) Info() string {
	return fmt.Sprintf("Restaurant: %s | %s | %s", r.name, r.address, r.phone)
}

// CurrentOrders returns a snapshot of the orders currently in preparation.
func (r *Restaurant) CurrentOrders() []*order.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders := make([]*order.Order, 0, len(r.inPrep))
	for _, o := range r.inPrep {
		orders = append(orders, o)
	}
	return orders
}

// SendNotification emits a message attributed to this restaurant.
func (r *Restaurant) SendNotification(message string) {
	r.events.Infof("restaurant %s notification: %s", r.name, message)
}

// ReceiveOrderUpdate reacts to an order status change:
//   - confirmed: announce the new order and run the preparation workflow
//   - ready: announce pickup readiness only
//
// All other statuses are ignored.
func (r *Restaurant) ReceiveOrderUpdate(o *order.Order) {
	switch o.Status() {
	case order.Confirmed:
		r.SendNotification(fmt.Sprintf("new order received: %s", o.ID()))
		r.PrepareOrder(o)
	case order.Ready:
		r.SendNotification(fmt.Sprintf("order %s is ready for pickup", o.ID()))
	}
}

// PrepareOrder runs the preparation workflow: the order joins the working
// set, moves to preparing, and after the simulated preparation delay moves
// to ready and leaves the working set.
//
// Transition rejections are already surfaced through the order's event log,
// so the workflow does not abort on them.
func (r *Restaurant) PrepareOrder(o *order.Order) {
	r.trackPrep(o)
	defer r.untrackPrep(o)

	r.events.Infof("%s is preparing order: %s", r.name, o.ItemSummary())
	_ = o.UpdateStatus(order.Preparing)

	if r.prepTime > 0 {
		time.Sleep(r.prepTime)
	}

	_ = o.UpdateStatus(order.Ready)
}

func (r *Restaurant) trackPrep(o *order.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inPrep[o.ID().String()] = o
}

func (r *Restaurant) untrackPrep(o *order.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inPrep, o.ID().String())
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	r.address = address
	return nil
}

func (r *Restaurant) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	r.phone = phone
	return nil
}

func validatePrepTime(prepTime time.Duration) error {
	if prepTime < 0 {
		return ErrPrepTimeIsInvalid
	}
	return nil
}
