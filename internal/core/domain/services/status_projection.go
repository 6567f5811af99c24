package services

import (
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tracking"
)

// ProjectOrderStatus maps a tracking status onto the customer-facing order
// status. The tracking record is authoritative for delivery progress; the
// order status is recomputed from it through this mapping and applied with
// Order.ApplyDeliveryProgress.
//
// Failed and Returned have no customer-facing counterpart: the order stays
// where it is (OutForDelivery) until the parcel is re-dispatched or the order
// is resolved operationally, so both project to the current order status.
func ProjectOrderStatus(ts tracking.Status, current order.Status) order.Status {
	switch ts {
	case tracking.StatusAssigned:
		return order.StatusConfirmed
	case tracking.StatusPickedUp, tracking.StatusInTransit:
		return order.StatusShipped
	case tracking.StatusOutForDelivery:
		return order.StatusOutForDelivery
	case tracking.StatusDelivered:
		return order.StatusDelivered
	default:
		return current
	}
}
