package commands_test

import (
	"testing"

	"foodtiger/internal/core/application/usecases/commands"
	"foodtiger/internal/core/domain/model/customer"
	"foodtiger/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParties(t *testing.T) (*customer.Customer, *restaurant.Restaurant) {
	t.Helper()
	c, err := customer.NewCustomer("CUST001", "Mr. Rahman", "9876543210", nil)
	require.NoError(t, err)
	r, err := restaurant.NewRestaurant("Spice Garden", "45 Commercial Street", "080-23456789", 0, nil)
	require.NoError(t, err)
	return c, r
}

func TestNewPlaceOrderCommand(t *testing.T) {
	c, r := newParties(t)
	items := []string{"Butter Chicken", "Rice"}

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(c, r, items)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, c, cmd.Customer())
		assert.Equal(t, r, cmd.Restaurant())
		assert.Equal(t, items, cmd.Items())
	})

	t.Run("should fail with nil customer", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(nil, r, items)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrCustomerIsRequired)
	})

	t.Run("should fail with nil restaurant", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(c, nil, items)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrRestaurantIsRequired)
	})

	t.Run("should fail with no items", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(c, r, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrItemsAreRequired)
	})

	t.Run("should reject a zero-value command", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrPlaceOrderCommandIsNotConstructed, err)
	})
}

func TestNewDispatchRiderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd := commands.NewDispatchRiderCommand()

		require.NoError(t, cmd.Validate())
	})

	t.Run("should reject a zero-value command", func(t *testing.T) {
		var cmd commands.DispatchRiderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrDispatchRiderCommandIsNotConstructed, err)
	})
}
