package order_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()

	first, err := order.NewItem(kernel.NewUUID(), "Masala Chai 250g", 149.0, 2, "https://cdn.example.com/chai.jpg")
	require.NoError(t, err)
	second, err := order.NewItem(kernel.NewUUID(), "Steel Tumbler", 299.0, 1, "")
	require.NoError(t, err)
	return []order.Item{first, second}
}

func testAddress(t *testing.T) kernel.Address {
	t.Helper()

	addr, err := kernel.NewAddress("12 MG Road", "Pune", "Maharashtra", "411001", "", "+91-9000000000")
	require.NoError(t, err)
	return addr
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testItems(t), testAddress(t), order.PaymentUPI)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_order_with_computed_total", func(t *testing.T) {
		// When
		o := newTestOrder(t)

		// Then
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.InDelta(t, 2*149.0+299.0, o.TotalAmount(), 0.001)
		assert.False(t, o.IsAssigned())
		assert.Nil(t, o.EstimatedDelivery())
		require.NoError(t, o.Validate())
	})

	t.Run("rejects_empty_item_snapshot", func(t *testing.T) {
		// When
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, testAddress(t), order.PaymentUPI)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_invalid_payment_method", func(t *testing.T) {
		// When
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), testItems(t), testAddress(t), order.PaymentMethodUnknown)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("rejects_zero_quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Masala Chai 250g", 149.0, 0, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_negative_price", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Masala Chai 250g", -1, 1, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("subtotal_is_price_times_quantity", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), "Masala Chai 250g", 149.0, 3, "")
		require.NoError(t, err)
		assert.InDelta(t, 447.0, item.Subtotal(), 0.001)
	})
}

func TestOrder_AssignDeliveryPerson(t *testing.T) {
	t.Run("confirms_pending_order", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		personID := kernel.NewUUID()
		eta := time.Now().Add(24 * time.Hour)

		// When
		require.NoError(t, o.AssignDeliveryPerson(personID, eta))

		// Then
		assert.Equal(t, order.StatusConfirmed, o.Status())
		require.NotNil(t, o.AssignedDeliveryPerson())
		assert.True(t, o.AssignedDeliveryPerson().IsEqual(personID))
		require.NotNil(t, o.EstimatedDelivery())
	})

	t.Run("allows_reassignment_while_confirmed", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.AssignDeliveryPerson(kernel.NewUUID(), time.Now()))
		replacement := kernel.NewUUID()

		// When
		require.NoError(t, o.AssignDeliveryPerson(replacement, time.Now()))

		// Then
		assert.True(t, o.AssignedDeliveryPerson().IsEqual(replacement))
	})

	t.Run("rejects_assignment_after_shipment", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.AssignDeliveryPerson(kernel.NewUUID(), time.Now()))
		require.NoError(t, o.ApplyDeliveryProgress(order.StatusShipped))

		// When
		err := o.AssignDeliveryPerson(kernel.NewUUID(), time.Now())

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancels_pending_order", func(t *testing.T) {
		// Given
		o := newTestOrder(t)

		// When
		require.NoError(t, o.Cancel())

		// Then
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("cancels_confirmed_order", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.AssignDeliveryPerson(kernel.NewUUID(), time.Now()))

		// Then
		require.NoError(t, o.Cancel())
	})

	t.Run("rejects_cancellation_after_shipment", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.AssignDeliveryPerson(kernel.NewUUID(), time.Now()))
		require.NoError(t, o.ApplyDeliveryProgress(order.StatusShipped))

		// Then
		require.ErrorIs(t, o.Cancel(), errs.ErrValueIsInvalid)
	})
}

func TestOrder_ApplyDeliveryProgress(t *testing.T) {
	t.Run("walks_the_full_delivery_lifecycle", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.AssignDeliveryPerson(kernel.NewUUID(), time.Now()))

		// When / Then
		require.NoError(t, o.ApplyDeliveryProgress(order.StatusShipped))
		require.NoError(t, o.ApplyDeliveryProgress(order.StatusOutForDelivery))
		require.NoError(t, o.ApplyDeliveryProgress(order.StatusDelivered))
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("same_status_projection_is_a_noop", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.AssignDeliveryPerson(kernel.NewUUID(), time.Now()))
		require.NoError(t, o.ApplyDeliveryProgress(order.StatusShipped))

		// When
		err := o.ApplyDeliveryProgress(order.StatusShipped)

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.StatusShipped, o.Status())
	})

	t.Run("rejects_backward_projection", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.AssignDeliveryPerson(kernel.NewUUID(), time.Now()))
		require.NoError(t, o.ApplyDeliveryProgress(order.StatusShipped))

		// When
		err := o.ApplyDeliveryProgress(order.StatusPending)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("terminal_states_have_no_successors", func(t *testing.T) {
		assert.True(t, order.StatusDelivered.IsTerminal())
		assert.True(t, order.StatusCancelled.IsTerminal())
		assert.False(t, order.StatusPending.IsTerminal())
	})

	t.Run("illegal_transition_returns_typed_error", func(t *testing.T) {
		_, err := order.StatusPending.TransitionTo(order.StatusDelivered)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("round_trips_through_strings", func(t *testing.T) {
		for _, s := range []string{"pending", "confirmed", "shipped", "out_for_delivery", "delivered", "cancelled"} {
			st, err := order.StatusFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, st.String())
		}
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
