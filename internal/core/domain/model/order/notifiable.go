package order

// Notifiable is the capability contract implemented by every participant
// attached to an order (customer, restaurant, rider). The Order invokes
// ReceiveOrderUpdate synchronously on each attached participant after every
// accepted status transition, in the fixed order: customer, restaurant,
// rider (rider only once assigned).
//
// Reactions may trigger further transitions on the same order; fan-out is
// reentrant and call-stack-bound, so implementations must not assume the
// order's status is still the one that triggered the update by the time
// they run.
type Notifiable interface {
	// SendNotification emits a human readable message attributed to this
	// participant. Side effect only; no failure modes are defined.
	SendNotification(message string)

	// ReceiveOrderUpdate inspects the order's status and the participant's
	// relationship to it, and may send notifications or trigger further
	// domain actions.
	ReceiveOrderUpdate(o *Order)
}

// EventLog receives the human readable trace of order lifecycle events:
// status-change announcements, rejected-transition warnings, and participant
// notifications. gommon's *log.Logger satisfies it; tests substitute an
// in-memory recorder.
type EventLog interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// NopEventLog is an EventLog that discards everything. It is the default
// when no logger is supplied.
type NopEventLog struct{}

// Infof discards the event.
func (NopEventLog) Infof(string, ...interface{}) {}

// Warnf discards the event.
func (NopEventLog) Warnf(string, ...interface{}) {}
