package orderregistry_test

import (
	"testing"

	"foodtiger/internal/adapters/out/memory/orderregistry"
	"foodtiger/internal/core/domain/model/kernel"
	"foodtiger/internal/core/domain/model/order"
	"foodtiger/internal/core/domain/model/rider"
	"foodtiger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubParticipant struct{}

func (stubParticipant) SendNotification(string)        {}
func (stubParticipant) ReceiveOrderUpdate(*order.Order) {}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.GenerateOrderID(), stubParticipant{}, stubParticipant{}, []string{"A"}, nil)
	require.NoError(t, err)
	return o
}

func toReady(t *testing.T, o *order.Order) {
	t.Helper()
	require.NoError(t, o.UpdateStatus(order.Preparing))
	require.NoError(t, o.UpdateStatus(order.Ready))
}

func TestRegistry_Add(t *testing.T) {
	ctx := t.Context()

	t.Run("should register and look up an order", func(t *testing.T) {
		registry := orderregistry.NewRegistry()
		o := newOrder(t)

		require.NoError(t, registry.Add(ctx, o))

		got, err := registry.Get(ctx, o.ID())
		require.NoError(t, err)
		assert.True(t, got.IsEqual(o))
	})

	t.Run("should reject a duplicate identifier", func(t *testing.T) {
		registry := orderregistry.NewRegistry()
		o := newOrder(t)
		require.NoError(t, registry.Add(ctx, o))

		err := registry.Add(ctx, o)

		require.Error(t, err)
		assert.Equal(t, orderregistry.ErrOrderAlreadyRegistered, err)
	})

	t.Run("should reject an improperly constructed order", func(t *testing.T) {
		registry := orderregistry.NewRegistry()
		var o order.Order

		err := registry.Add(ctx, &o)

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestRegistry_Get(t *testing.T) {
	ctx := t.Context()

	t.Run("should report a missing order as not found", func(t *testing.T) {
		registry := orderregistry.NewRegistry()
		id, _ := kernel.NewOrderID("ORD-missing")

		_, err := registry.Get(ctx, id)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestRegistry_Scans(t *testing.T) {
	ctx := t.Context()

	t.Run("should preserve registration order", func(t *testing.T) {
		registry := orderregistry.NewRegistry()
		first := newOrder(t)
		second := newOrder(t)
		require.NoError(t, registry.Add(ctx, first))
		require.NoError(t, registry.Add(ctx, second))

		all, err := registry.GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.True(t, all[0].IsEqual(first))
		assert.True(t, all[1].IsEqual(second))
	})

	t.Run("should exclude terminal orders from uncompleted scan", func(t *testing.T) {
		registry := orderregistry.NewRegistry()
		active := newOrder(t)
		cancelled := newOrder(t)
		require.NoError(t, registry.Add(ctx, active))
		require.NoError(t, registry.Add(ctx, cancelled))
		require.NoError(t, cancelled.UpdateStatus(order.Cancelled))

		uncompleted, err := registry.GetAllUncompleted(ctx)

		require.NoError(t, err)
		require.Len(t, uncompleted, 1)
		assert.True(t, uncompleted[0].IsEqual(active))
	})

	t.Run("should find the first ready unassigned order", func(t *testing.T) {
		registry := orderregistry.NewRegistry()
		placed := newOrder(t)
		assigned := newOrder(t)
		ready := newOrder(t)
		require.NoError(t, registry.Add(ctx, placed))
		require.NoError(t, registry.Add(ctx, assigned))
		require.NoError(t, registry.Add(ctx, ready))

		toReady(t, assigned)
		r, err := rider.NewRider("Abdul", "7654321098", "Scooter", 0, nil)
		require.NoError(t, err)
		require.NoError(t, assigned.AssignRider(r))
		toReady(t, ready)

		got, err := registry.GetFirstReadyForPickup(ctx)

		require.NoError(t, err)
		assert.True(t, got.IsEqual(ready))
	})

	t.Run("should report not found when nothing awaits pickup", func(t *testing.T) {
		registry := orderregistry.NewRegistry()
		require.NoError(t, registry.Add(ctx, newOrder(t)))

		_, err := registry.GetFirstReadyForPickup(ctx)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
