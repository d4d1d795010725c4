package order_test

import (
	"fmt"
	"sync"
	"testing"

	"foodtiger/internal/core/domain/model/kernel"
	"foodtiger/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// notifyLog records the fan-out sequence across all stub participants.
type notifyLog struct {
	mu      sync.Mutex
	entries []string
}

func (l *notifyLog) add(entry string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

func (l *notifyLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries...)
}

type stubParticipant struct {
	name     string
	log      *notifyLog
	onUpdate func(o *order.Order)
}

func (p *stubParticipant) SendNotification(message string) {
	p.log.add(fmt.Sprintf("%s notified: %s", p.name, message))
}

func (p *stubParticipant) ReceiveOrderUpdate(o *order.Order) {
	p.log.add(fmt.Sprintf("%s saw %s", p.name, o.Status()))
	if p.onUpdate != nil {
		p.onUpdate(o)
	}
}

// traceRecorder is an in-memory EventLog.
type traceRecorder struct {
	mu    sync.Mutex
	infos []string
	warns []string
}

func (r *traceRecorder) Infof(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func (r *traceRecorder) Warnf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warns = append(r.warns, fmt.Sprintf(format, args...))
}

func newTestOrder(t *testing.T, items ...string) (*order.Order, *notifyLog, *traceRecorder) {
	t.Helper()

	if len(items) == 0 {
		items = []string{"Butter Chicken", "Garlic Naan"}
	}

	log := &notifyLog{}
	trace := &traceRecorder{}
	o, err := order.NewOrder(
		kernel.GenerateOrderID(),
		&stubParticipant{name: "customer", log: log},
		&stubParticipant{name: "restaurant", log: log},
		items,
		trace,
	)
	require.NoError(t, err)
	return o, log, trace
}

func TestNewOrder(t *testing.T) {
	validID := kernel.GenerateOrderID()
	log := &notifyLog{}
	customer := &stubParticipant{name: "customer", log: log}
	restaurant := &stubParticipant{name: "restaurant", log: log}
	items := []string{"A", "B"}

	t.Run("should create valid order in placed status", func(t *testing.T) {
		o, err := order.NewOrder(validID, customer, restaurant, items, nil)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, []string{"A", "B"}, o.Items())
		assert.Equal(t, "A, B", o.ItemSummary())
		assert.False(t, o.CreatedAt().IsZero())
		assert.Equal(t, order.Notifiable(customer), o.Customer())
		assert.Equal(t, order.Notifiable(restaurant), o.Restaurant())
		assert.Nil(t, o.Rider())
		assert.True(t, o.IsActive())
	})

	t.Run("should fail with zero order id", func(t *testing.T) {
		var zeroID kernel.OrderID

		o, err := order.NewOrder(zeroID, customer, restaurant, items, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "OrderID must be created")
	})

	t.Run("should fail with nil customer", func(t *testing.T) {
		o, err := order.NewOrder(validID, nil, restaurant, items, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrCustomerIsRequired)
	})

	t.Run("should fail with nil restaurant", func(t *testing.T) {
		o, err := order.NewOrder(validID, customer, nil, items, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrRestaurantIsRequired)
	})

	t.Run("should fail with empty item list", func(t *testing.T) {
		o, err := order.NewOrder(validID, customer, restaurant, nil, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrItemsAreRequired)
	})

	t.Run("should aggregate multiple validation errors", func(t *testing.T) {
		var zeroID kernel.OrderID

		o, err := order.NewOrder(zeroID, nil, nil, nil, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrCustomerIsRequired)
		require.ErrorIs(t, err, order.ErrRestaurantIsRequired)
		require.ErrorIs(t, err, order.ErrItemsAreRequired)
	})

	t.Run("should copy the item list on both sides", func(t *testing.T) {
		input := []string{"A", "B"}
		o, err := order.NewOrder(validID, customer, restaurant, input, nil)
		require.NoError(t, err)

		input[0] = "mutated"
		assert.Equal(t, []string{"A", "B"}, o.Items())

		got := o.Items()
		got[1] = "mutated"
		assert.Equal(t, []string{"A", "B"}, o.Items())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail for zero-value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_UpdateStatus(t *testing.T) {
	t.Run("should commit a permitted transition and fan out", func(t *testing.T) {
		o, log, trace := newTestOrder(t)

		err := o.UpdateStatus(order.Confirmed)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, []string{"customer saw confirmed", "restaurant saw confirmed"}, log.all())
		require.Len(t, trace.infos, 1)
		assert.Contains(t, trace.infos[0], "placed to confirmed")
	})

	t.Run("should reject a forbidden transition with no fan-out", func(t *testing.T) {
		o, log, trace := newTestOrder(t)

		err := o.UpdateStatus(order.Delivered)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Placed, o.Status())
		assert.Empty(t, log.all())
		require.Len(t, trace.warns, 1)
		assert.Contains(t, trace.warns[0], "invalid status change: placed to delivered")
	})

	t.Run("should reject a status outside the fixed set", func(t *testing.T) {
		o, log, _ := newTestOrder(t)

		err := o.UpdateStatus(order.Unknown)

		require.Error(t, err)
		assert.Equal(t, order.Placed, o.Status())
		assert.Empty(t, log.all())
	})

	t.Run("should never accept assigned_to_rider as a target", func(t *testing.T) {
		o, _, _ := newTestOrder(t)

		err := o.UpdateStatus(order.AssignedToRider)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Placed, o.Status())
	})

	t.Run("should allow placed to preparing but not preparing back to confirmed", func(t *testing.T) {
		o, _, _ := newTestOrder(t, "A", "B")

		require.NoError(t, o.UpdateStatus(order.Preparing))
		assert.Equal(t, order.Preparing, o.Status())

		err := o.UpdateStatus(order.Confirmed)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("should accept no transitions out of cancelled", func(t *testing.T) {
		o, _, _ := newTestOrder(t)
		require.NoError(t, o.UpdateStatus(order.Cancelled))

		for _, next := range allStatuses() {
			err := o.UpdateStatus(next)

			require.Error(t, err, "cancelled to %s", next)
			assert.Equal(t, order.Cancelled, o.Status())
		}
		assert.False(t, o.IsActive())
	})

	t.Run("should support reentrant transitions from reactions", func(t *testing.T) {
		log := &notifyLog{}
		restaurant := &stubParticipant{name: "restaurant", log: log}
		restaurant.onUpdate = func(o *order.Order) {
			if o.Status() == order.Confirmed {
				require.NoError(t, o.UpdateStatus(order.Preparing))
				require.NoError(t, o.UpdateStatus(order.Ready))
			}
		}

		o, err := order.NewOrder(
			kernel.GenerateOrderID(),
			&stubParticipant{name: "customer", log: log},
			restaurant,
			[]string{"A"},
			nil,
		)
		require.NoError(t, err)

		require.NoError(t, o.UpdateStatus(order.Confirmed))

		assert.Equal(t, order.Ready, o.Status())
		assert.Equal(t, []string{
			"customer saw confirmed",
			"restaurant saw confirmed",
			"customer saw preparing",
			"restaurant saw preparing",
			"customer saw ready",
			"restaurant saw ready",
		}, log.all())
	})

	t.Run("should serialize concurrent transitions on one order", func(t *testing.T) {
		o, _, _ := newTestOrder(t)
		require.NoError(t, o.UpdateStatus(order.Preparing))
		require.NoError(t, o.UpdateStatus(order.Ready))
		require.NoError(t, o.UpdateStatus(order.PickedUp))
		require.NoError(t, o.UpdateStatus(order.Delivered))

		var wg sync.WaitGroup
		results := make([]error, 2)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = o.UpdateStatus(order.Completed)
			}()
		}
		wg.Wait()

		var succeeded int
		for _, err := range results {
			if err == nil {
				succeeded++
			}
		}
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, order.Completed, o.Status())
	})
}

func TestOrder_AssignRider(t *testing.T) {
	t.Run("should set rider once and fan out assigned_to_rider", func(t *testing.T) {
		o, log, trace := newTestOrder(t)
		require.NoError(t, o.UpdateStatus(order.Preparing))
		require.NoError(t, o.UpdateStatus(order.Ready))
		rider := &stubParticipant{name: "rider", log: log}

		err := o.AssignRider(rider)

		require.NoError(t, err)
		assert.Equal(t, order.AssignedToRider, o.Status())
		assert.Equal(t, order.Notifiable(rider), o.Rider())

		entries := log.all()
		assert.Equal(t, []string{
			"customer saw assigned_to_rider",
			"restaurant saw assigned_to_rider",
			"rider saw assigned_to_rider",
		}, entries[len(entries)-3:])
		assert.Contains(t, trace.infos[len(trace.infos)-1], "ready to assigned_to_rider")
	})

	t.Run("should reject nil rider", func(t *testing.T) {
		o, _, _ := newTestOrder(t)

		err := o.AssignRider(nil)

		require.ErrorIs(t, err, order.ErrRiderIsRequired)
		assert.Nil(t, o.Rider())
	})

	t.Run("should reject re-assignment", func(t *testing.T) {
		o, log, _ := newTestOrder(t)
		first := &stubParticipant{name: "rider1", log: log}
		second := &stubParticipant{name: "rider2", log: log}
		require.NoError(t, o.AssignRider(first))

		err := o.AssignRider(second)

		require.Error(t, err)
		assert.Equal(t, order.ErrRiderAlreadyAssigned, err)
		assert.Equal(t, order.Notifiable(first), o.Rider())
	})

	t.Run("should reject assignment to a cancelled order", func(t *testing.T) {
		o, log, trace := newTestOrder(t)
		require.NoError(t, o.UpdateStatus(order.Cancelled))
		rider := &stubParticipant{name: "rider", log: log}
		fanOuts := len(log.all())

		err := o.AssignRider(rider)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Nil(t, o.Rider())
		assert.Len(t, log.all(), fanOuts)
		require.Len(t, trace.warns, 1)
		assert.Contains(t, trace.warns[0], "invalid status change: cancelled to assigned_to_rider")
	})

	t.Run("should reject assignment to a completed order", func(t *testing.T) {
		o, log, _ := newTestOrder(t)
		for _, next := range []order.Status{
			order.Preparing, order.Ready, order.PickedUp, order.Delivered, order.Completed,
		} {
			require.NoError(t, o.UpdateStatus(next))
		}
		rider := &stubParticipant{name: "rider", log: log}

		err := o.AssignRider(rider)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Completed, o.Status())
		assert.Nil(t, o.Rider())
	})

	t.Run("should permit picked_up after assignment", func(t *testing.T) {
		o, log, _ := newTestOrder(t)
		rider := &stubParticipant{name: "rider", log: log}
		require.NoError(t, o.UpdateStatus(order.Preparing))
		require.NoError(t, o.UpdateStatus(order.Ready))
		require.NoError(t, o.AssignRider(rider))

		require.NoError(t, o.UpdateStatus(order.PickedUp))

		assert.Equal(t, order.PickedUp, o.Status())
		entries := log.all()
		assert.Equal(t, []string{
			"customer saw picked_up",
			"restaurant saw picked_up",
			"rider saw picked_up",
		}, entries[len(entries)-3:])
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should compare by identifier", func(t *testing.T) {
		log := &notifyLog{}
		customer := &stubParticipant{name: "customer", log: log}
		restaurant := &stubParticipant{name: "restaurant", log: log}
		id := kernel.GenerateOrderID()

		a, err := order.NewOrder(id, customer, restaurant, []string{"A"}, nil)
		require.NoError(t, err)
		b, err := order.NewOrder(id, customer, restaurant, []string{"B"}, nil)
		require.NoError(t, err)
		c, err := order.NewOrder(kernel.GenerateOrderID(), customer, restaurant, []string{"A"}, nil)
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
		assert.False(t, a.IsEqual(nil))
	})
}
