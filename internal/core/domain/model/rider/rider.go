// Package rider provides the Rider participant: a courier with a binary
// availability flag that gates delivery acceptance, a delivery workflow that
// drives an order from assignment to completion, and a delivery history.
package rider

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"foodtiger/internal/core/domain/model/order"
	"foodtiger/internal/pkg/errs"
	"foodtiger/internal/pkg/guard"
)

// Domain errors for rider operations.
var (
	// ErrNameIsRequired is returned when creating a rider without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrContactIsRequired is returned when creating a rider without contact info.
	ErrContactIsRequired = errs.NewValueIsRequiredError("contact")
	// ErrVehicleIsRequired is returned when creating a rider without a vehicle type.
	ErrVehicleIsRequired = errs.NewValueIsRequiredError("vehicle")
	// ErrTransitTimeIsInvalid is returned for a negative transit delay.
	ErrTransitTimeIsInvalid = errs.NewValueIsInvalidError("transit time")
	// ErrRiderIsNotConstructed is returned when using an improperly initialized Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")
	// ErrRiderUnavailable is returned when a delivery is requested of a rider
	// that is already engaged. Non-fatal; the order is left unchanged.
	ErrRiderUnavailable = errors.New("rider is not available for delivery")
)

// Rider is a participant that delivers orders.
//
// A rider accepts at most one delivery at a time: the availability flag is a
// mutex-guarded test-and-set, so concurrent Deliver calls on the same rider
// are mutually exclusive while riders on different orders proceed
// independently.
type Rider struct {
	name    string
	contact string
	vehicle string

	// transitTime simulates travel between pickup and delivery.
	transitTime time.Duration

	mu        sync.Mutex
	available bool
	history   []*order.Order

	events order.EventLog
	guard  guard.ConstructorGuard
}

// NewRider creates an available Rider with the given identity, vehicle type,
// and simulated transit delay. The delay must not be negative; zero disables
// it (useful in tests). A nil events sink disables the trace.
func NewRider(name, contact, vehicle string, transitTime time.Duration, events order.EventLog) (*Rider, error) {
	if events == nil {
		events = order.NopEventLog{}
	}

	r := &Rider{
		transitTime: transitTime,
		available:   true,
		events:      events,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setName(name),
		r.setContact(contact),
		r.setVehicle(vehicle),
		validateTransitTime(transitTime),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Rider was created via NewRider.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// Name returns the rider's name.
func (r *Rider) Name() string {
	return r.name
}

// Contact returns the rider's contact info.
func (r *Rider) Contact() string {
	return r.contact
}

// Vehicle returns the rider's vehicle type.
func (r *Rider) Vehicle() string {
	return r.vehicle
}

// Info returns a one-line description of the rider.
func (r *Rider) Info() string {
	return fmt.Sprintf("Rider: %s (%s), vehicle: %s", r.name, r.contact, r.vehicle)
}

// IsAvailable reports whether the rider may accept a new delivery.
func (r *Rider) IsAvailable() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.available
}

// DeliveryHistory returns a copy of the orders this rider has taken, in
// acceptance order.
func (r *Rider) DeliveryHistory() []*order.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*order.Order(nil), r.history...)
}

// Deliver runs the delivery workflow for one order. If the rider is not
// available it reports ErrRiderUnavailable and leaves the order unchanged.
//
// Otherwise the rider marks itself unavailable, assigns itself to the order
// (moving it to assigned_to_rider), records the order in its history, and
// drives the order through picked_up, the simulated transit delay, delivered,
// and completed. Each transition fans out to all attached participants.
// Availability is restored when the workflow ends, on failure included.
func (r *Rider) Deliver(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if !r.acquire() {
		r.events.Warnf("%s is not available for delivery", r.name)
		return ErrRiderUnavailable
	}
	defer r.release()

	r.events.Infof("%s is delivering order %s on %s", r.name, o.ID(), r.vehicle)

	if err := o.AssignRider(r); err != nil {
		return err
	}
	r.recordDelivery(o)

	if err := o.UpdateStatus(order.PickedUp); err != nil {
		return err
	}

	if r.transitTime > 0 {
		time.Sleep(r.transitTime)
	}

	if err := o.UpdateStatus(order.Delivered); err != nil {
		return err
	}
	if err := o.UpdateStatus(order.Completed); err != nil {
		return err
	}

	r.events.Infof("%s completed delivery of order %s", r.name, o.ID())
	return nil
}

// GetCurrentDelivery returns the first order in the supplied collection that
// is assigned to this rider and not yet in a terminal status. The scan is a
// stable linear walk in the collection's own order. Returns nil when the
// rider has no delivery in flight.
func (r *Rider) GetCurrentDelivery(allOrders []*order.Order) *order.Order {
	for _, o := range allOrders {
		if o.Rider() == order.Notifiable(r) && !o.Status().IsTerminal() {
			return o
		}
	}
	return nil
}

// SendNotification emits a message attributed to this rider.
func (r *Rider) SendNotification(message string) {
	r.events.Infof("rider %s notification: %s", r.name, message)
}

// ReceiveOrderUpdate reacts to an order status change. A ready order with no
// rider assigned yet produces an informational pickup notification; it does
// not assign the rider, which stays an explicit external action.
func (r *Rider) ReceiveOrderUpdate(o *order.Order) {
	if o.Status() == order.Ready && o.Rider() == nil {
		r.SendNotification(fmt.Sprintf("order %s is ready for pickup", o.ID()))
	}
}

// acquire atomically claims the rider for a delivery.
// Returns false when the rider is already engaged.
func (r *Rider) acquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.available {
		return false
	}
	r.available = false
	return true
}

func (r *Rider) release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.available = true
}

func (r *Rider) recordDelivery(o *order.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, o)
}

func (r *Rider) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Rider) setContact(contact string) error {
	if contact == "" {
		return ErrContactIsRequired
	}
	r.contact = contact
	return nil
}

func (r *Rider) setVehicle(vehicle string) error {
	if vehicle == "" {
		return ErrVehicleIsRequired
	}
	r.vehicle = vehicle
	return nil
}

func validateTransitTime(transitTime time.Duration) error {
	if transitTime < 0 {
		return ErrTransitTimeIsInvalid
	}
	return nil
}
