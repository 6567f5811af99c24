package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestProjectOrderStatus(t *testing.T) {
	t.Run("maps_each_tracking_stage_to_the_customer_facing_status", func(t *testing.T) {
		cases := []struct {
			trackingStatus tracking.Status
			expected       order.Status
		}{
			{tracking.StatusAssigned, order.StatusConfirmed},
			{tracking.StatusPickedUp, order.StatusShipped},
			{tracking.StatusInTransit, order.StatusShipped},
			{tracking.StatusOutForDelivery, order.StatusOutForDelivery},
			{tracking.StatusDelivered, order.StatusDelivered},
		}

		for _, c := range cases {
			t.Run(c.trackingStatus.String(), func(t *testing.T) {
				got := services.ProjectOrderStatus(c.trackingStatus, order.StatusConfirmed)
				assert.Equal(t, c.expected, got)
			})
		}
	})

	t.Run("failed_and_returned_keep_the_current_order_status", func(t *testing.T) {
		assert.Equal(t, order.StatusOutForDelivery,
			services.ProjectOrderStatus(tracking.StatusFailed, order.StatusOutForDelivery))
		assert.Equal(t, order.StatusOutForDelivery,
			services.ProjectOrderStatus(tracking.StatusReturned, order.StatusOutForDelivery))
	})
}
