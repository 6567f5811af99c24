package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/person"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/core/domain/model/zone"

	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) kernel.Address {
	t.Helper()

	addr, err := kernel.NewAddress("12 MG Road", "Pune", "Maharashtra", "411001", "", "+91-9000000000")
	require.NoError(t, err)
	return addr
}

func testItems(t *testing.T) []order.Item {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "Masala Chai 250g", 149.0, 2, "")
	require.NoError(t, err)
	return []order.Item{item}
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testItems(t), testAddress(t), order.PaymentUPI)
	require.NoError(t, err)
	return o
}

func newActivePerson(t *testing.T) *person.DeliveryPerson {
	t.Helper()

	p, err := person.NewDeliveryPerson(
		kernel.NewUUID(), kernel.NewUUID(), "Ravi Kumar", "+91-9000000001", person.VehicleBike)
	require.NoError(t, err)
	return p
}

func newZoneWithAssignment(t *testing.T, p *person.DeliveryPerson, maxCapacity int) *zone.Zone {
	t.Helper()

	z, err := zone.NewZone(kernel.NewUUID(), "Downtown", "Pune", []string{"411001"}, nil)
	require.NoError(t, err)
	require.NoError(t, z.AddAssignment(p.ID(), p.UserID(), maxCapacity))
	return z
}

func newAssignedTracking(t *testing.T, orderID, personID, userID kernel.UUID) *tracking.Tracking {
	t.Helper()

	now := time.Now()
	tr, err := tracking.NewTracking(
		kernel.NewUUID(), orderID, personID, userID, testAddress(t), now.Add(24*time.Hour), now)
	require.NoError(t, err)
	return tr
}

func newOutForDeliveryTracking(t *testing.T, orderID, personID, userID kernel.UUID) *tracking.Tracking {
	t.Helper()

	tr := newAssignedTracking(t, orderID, personID, userID)
	now := time.Now()
	require.NoError(t, tr.MarkPickedUp(now))
	require.NoError(t, tr.MarkInTransit(now))
	require.NoError(t, tr.MarkOutForDelivery(now))
	return tr
}
