// Package order provides the Order aggregate root and its status state
// machine, the core of the food-delivery domain.
//
// The package includes:
//   - Order: the aggregate root holding identity, items, participants, and
//     the current status, with UpdateStatus as the single mutator
//   - Status: a state machine over the fixed transition table
//   - Notifiable: the capability contract for attached participants
//   - EventLog: the sink for the human readable lifecycle trace
//
// Key business rules:
//   - A transition is applied only if the transition table permits it;
//     rejected transitions are observable, non-fatal no-ops
//   - Every accepted transition synchronously notifies customer, restaurant,
//     and rider (if assigned), in that fixed order
//   - The rider is assigned at most once, through the AssignRider side
//     channel that moves the order to assigned_to_rider
//   - completed and cancelled are terminal
package order
