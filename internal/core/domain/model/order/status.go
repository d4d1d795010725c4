package order

import (
	"fmt"

	"foodtiger/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a fixed transition table so orders
// follow the delivery workflow:
//
//	placed ──> confirmed ──> preparing ──> ready ──> picked_up ──> out_for_delivery
//	   │            │             │           │          │               │
//	   │            │             │           │          └──> delivered <┘
//	   │            │             │           │                   │
//	   └────────────┴─────────────┴───────────┴──> cancelled      └──> completed
//
// The assigned_to_rider state sits outside the table as a target: it is only
// reachable through Order.AssignRider, after which the table permits the move
// to picked_up. Completed and cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status when a customer submits an order.
	Placed

	// Confirmed indicates the order was accepted and the restaurant
	// should begin preparation.
	Confirmed

	// Preparing indicates the restaurant is working on the order.
	Preparing

	// Ready indicates the order awaits pickup at the restaurant.
	Ready

	// AssignedToRider indicates a rider accepted the delivery.
	// Set only through Order.AssignRider, never through UpdateStatus.
	AssignedToRider

	// PickedUp indicates the rider has collected the order.
	PickedUp

	// OutForDelivery indicates the order is in transit to the customer.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	Delivered

	// Completed is the successful final state. No further transitions.
	Completed

	// Cancelled is the aborted final state. No further transitions.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "unknown",
		Placed:          "placed",
		Confirmed:       "confirmed",
		Preparing:       "preparing",
		Ready:           "ready",
		AssignedToRider: "assigned_to_rider",
		PickedUp:        "picked_up",
		OutForDelivery:  "out_for_delivery",
		Delivered:       "delivered",
		Completed:       "completed",
		Cancelled:       "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:          "placed",
		Confirmed:       "confirmed",
		Preparing:       "preparing",
		Ready:           "ready",
		AssignedToRider: "assigned_to_rider",
		PickedUp:        "picked_up",
		OutForDelivery:  "out_for_delivery",
		Delivered:       "delivered",
		Completed:       "completed",
		Cancelled:       "cancelled",
	}
}

// getTransitionRules returns the fixed transition table mapping each status
// to the set of statuses it may legally advance to. Statuses absent from the
// table (completed, cancelled) accept no outgoing transitions.
//
// assigned_to_rider never appears as an allowed target here: it is set through
// the Order.AssignRider side channel. Its single outgoing edge to picked_up is
// part of the table so the rider workflow flows through UpdateStatus.
func getTransitionRules() map[Status][]Status {
	return map[Status][]Status{
		Placed:          {Confirmed, Preparing, Cancelled},
		Confirmed:       {Preparing, Cancelled},
		Preparing:       {Ready, Cancelled},
		Ready:           {PickedUp, Cancelled},
		AssignedToRider: {PickedUp},
		PickedUp:        {OutForDelivery, Delivered},
		OutForDelivery:  {Delivered},
		Delivered:       {Completed},
	}
}

// StatusFromString parses a status from its string representation.
// Returns an error for unknown names, including "unknown" itself.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// Validate checks if the Status value is a member of the fixed status set.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the snake_case name of the status. It implements
// fmt.Stringer and is safe to call on any Status value; invalid values
// render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status accepts no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the transition table permits advancing
// from this status to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitionRules()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the move from this status to next against the
// transition table.
//
// Returns:
//   - (next, nil) when the table permits the transition
//   - (Unknown, *InvalidTransitionError) otherwise
//
// This method is used by Order.UpdateStatus to enforce the state machine.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, &InvalidTransitionError{From: s, To: next}
	}
	return next, nil
}
