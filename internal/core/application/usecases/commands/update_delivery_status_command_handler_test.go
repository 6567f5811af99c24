package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/person"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/core/domain/model/zone"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// outForDeliveryFixture builds an order, courier, zone (slot taken), and
// tracking record mid-delivery.
type outForDeliveryFixture struct {
	order    *order.Order
	courier  *person.DeliveryPerson
	zone     *zone.Zone
	tracking *tracking.Tracking
}

func newOutForDeliveryFixture(t *testing.T) outForDeliveryFixture {
	t.Helper()

	testOrder := newPendingOrder(t)
	courier := newActivePerson(t)
	courier.RecordAssignment()

	testZone := newZoneWithAssignment(t, courier, 5)
	require.NoError(t, testZone.IncrementLoad(courier.ID()))

	require.NoError(t, testOrder.AssignDeliveryPerson(courier.ID(), time.Now().Add(24*time.Hour)))
	require.NoError(t, testOrder.ApplyDeliveryProgress(order.StatusShipped))
	require.NoError(t, testOrder.ApplyDeliveryProgress(order.StatusOutForDelivery))

	record := newOutForDeliveryTracking(t, testOrder.ID(), courier.ID(), testOrder.UserID())

	return outForDeliveryFixture{
		order:    testOrder,
		courier:  courier,
		zone:     testZone,
		tracking: record,
	}
}

func newStatusUpdateUoW(
	zoneRepo *MockZoneRepository,
	personRepo *MockPersonRepository,
	orderRepo *MockOrderRepository,
	trackingRepo *MockTrackingRepository,
) *MockUoWFactory {
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("ZoneRepository").Return(zoneRepo)
	uow.On("DeliveryPersonRepository").Return(personRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("TrackingRepository").Return(trackingRepo)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory
}

func TestUpdateDeliveryStatusCommandHandler_Handle_Delivered(t *testing.T) {
	ctx := t.Context()
	f := newOutForDeliveryFixture(t)

	zoneRepo := new(MockZoneRepository)
	personRepo := new(MockPersonRepository)
	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)

	trackingRepo.On("GetByOrderID", ctx, f.order.ID()).Return(f.tracking, nil).Once()
	personRepo.On("Get", ctx, f.courier.ID()).Return(f.courier, nil).Once()
	personRepo.On("Update", ctx, f.courier).Return(nil).Once()
	zoneRepo.On("FindActiveByCityPincode", ctx, "Pune", "411001").
		Return([]*zone.Zone{f.zone}, nil).Once()
	zoneRepo.On("GetForUpdate", ctx, f.zone.ID()).Return(f.zone, nil).Once()
	zoneRepo.On("Update", ctx, f.zone).Return(nil).Once()
	orderRepo.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once()
	orderRepo.On("Update", ctx, f.order).Return(nil).Once()
	trackingRepo.On("Update", ctx, f.tracking).Return(nil).Once()

	factory := newStatusUpdateUoW(zoneRepo, personRepo, orderRepo, trackingRepo)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		f.order.ID(), tracking.StatusDelivered, "left at door", "https://cdn.example.com/pod.jpg",
		tracking.FailureReasonUnknown, f.courier.ID(), false)
	require.NoError(t, err)

	handler := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, tracking.StatusDelivered, f.tracking.Status())
	assert.Equal(t, 1, f.courier.SuccessfulDeliveries())
	assert.Equal(t, 0, f.zone.CurrentLoad())
	assert.Equal(t, order.StatusDelivered, f.order.Status())
	require.NotNil(t, f.order.DeliveryDate())
	assert.Equal(t, "https://cdn.example.com/pod.jpg", f.order.DeliveryProof())

	zoneRepo.AssertExpectations(t)
	personRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_Failed(t *testing.T) {
	ctx := t.Context()
	f := newOutForDeliveryFixture(t)

	zoneRepo := new(MockZoneRepository)
	personRepo := new(MockPersonRepository)
	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)

	trackingRepo.On("GetByOrderID", ctx, f.order.ID()).Return(f.tracking, nil).Once()
	personRepo.On("Get", ctx, f.courier.ID()).Return(f.courier, nil).Once()
	personRepo.On("Update", ctx, f.courier).Return(nil).Once()
	zoneRepo.On("FindActiveByCityPincode", ctx, "Pune", "411001").
		Return([]*zone.Zone{f.zone}, nil).Once()
	zoneRepo.On("GetForUpdate", ctx, f.zone.ID()).Return(f.zone, nil).Once()
	zoneRepo.On("Update", ctx, f.zone).Return(nil).Once()
	orderRepo.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once()
	orderRepo.On("Update", ctx, f.order).Return(nil).Once()
	trackingRepo.On("Update", ctx, f.tracking).Return(nil).Once()

	factory := newStatusUpdateUoW(zoneRepo, personRepo, orderRepo, trackingRepo)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		f.order.ID(), tracking.StatusFailed, "no answer", "",
		tracking.FailureCustomerNotAvailable, f.courier.ID(), false)
	require.NoError(t, err)

	handler := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, tracking.StatusFailed, f.tracking.Status())
	assert.Equal(t, tracking.FailureCustomerNotAvailable, f.tracking.FailureReason())
	assert.Equal(t, 1, f.courier.FailedDeliveries())
	// Slot released on the failed outcome
	assert.Equal(t, 0, f.zone.CurrentLoad())
	// No customer-facing regression: the order stays out for delivery
	assert.Equal(t, order.StatusOutForDelivery, f.order.Status())
}

func TestUpdateDeliveryStatusCommandHandler_Handle_ReturnedDoesNotReleaseTwice(t *testing.T) {
	ctx := t.Context()
	f := newOutForDeliveryFixture(t)

	// The delivery already failed and its slot was already released.
	require.NoError(t, f.tracking.MarkFailed(time.Now(), tracking.FailureBadWeather, ""))
	require.NoError(t, f.zone.DecrementLoad(f.courier.ID()))
	f.courier.RecordFailure()

	zoneRepo := new(MockZoneRepository)
	personRepo := new(MockPersonRepository)
	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)

	trackingRepo.On("GetByOrderID", ctx, f.order.ID()).Return(f.tracking, nil).Once()
	orderRepo.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once()
	orderRepo.On("Update", ctx, f.order).Return(nil).Once()
	trackingRepo.On("Update", ctx, f.tracking).Return(nil).Once()

	factory := newStatusUpdateUoW(zoneRepo, personRepo, orderRepo, trackingRepo)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		f.order.ID(), tracking.StatusReturned, "", "",
		tracking.FailureReasonUnknown, f.courier.ID(), false)
	require.NoError(t, err)

	handler := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, tracking.StatusReturned, f.tracking.Status())
	assert.Equal(t, 0, f.zone.CurrentLoad())
	assert.Equal(t, 1, f.courier.FailedDeliveries())

	// Neither counters nor zone load move again
	personRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	zoneRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_AuthorizationDenied(t *testing.T) {
	ctx := t.Context()
	f := newOutForDeliveryFixture(t)
	stranger := kernel.NewUUID()

	zoneRepo := new(MockZoneRepository)
	personRepo := new(MockPersonRepository)
	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)

	trackingRepo.On("GetByOrderID", ctx, f.order.ID()).Return(f.tracking, nil).Once()

	factory := newStatusUpdateUoW(zoneRepo, personRepo, orderRepo, trackingRepo)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		f.order.ID(), tracking.StatusDelivered, "", "",
		tracking.FailureReasonUnknown, stranger, false)
	require.NoError(t, err)

	handler := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrActorNotAssigned)
	assert.Equal(t, tracking.StatusOutForDelivery, f.tracking.Status())
	trackingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_AdminOverride(t *testing.T) {
	ctx := t.Context()
	f := newOutForDeliveryFixture(t)

	zoneRepo := new(MockZoneRepository)
	personRepo := new(MockPersonRepository)
	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)

	trackingRepo.On("GetByOrderID", ctx, f.order.ID()).Return(f.tracking, nil).Once()
	personRepo.On("Get", ctx, f.courier.ID()).Return(f.courier, nil).Once()
	personRepo.On("Update", ctx, f.courier).Return(nil).Once()
	zoneRepo.On("FindActiveByCityPincode", ctx, "Pune", "411001").
		Return([]*zone.Zone{f.zone}, nil).Once()
	zoneRepo.On("GetForUpdate", ctx, f.zone.ID()).Return(f.zone, nil).Once()
	zoneRepo.On("Update", ctx, f.zone).Return(nil).Once()
	orderRepo.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once()
	orderRepo.On("Update", ctx, f.order).Return(nil).Once()
	trackingRepo.On("Update", ctx, f.tracking).Return(nil).Once()

	factory := newStatusUpdateUoW(zoneRepo, personRepo, orderRepo, trackingRepo)

	// No acting person at all: back-office update
	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		f.order.ID(), tracking.StatusDelivered, "", "",
		tracking.FailureReasonUnknown, kernel.UUID{}, true)
	require.NoError(t, err)

	handler := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))
	assert.Equal(t, tracking.StatusDelivered, f.tracking.Status())
}

func TestUpdateDeliveryStatusCommandHandler_Handle_TrackingNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	zoneRepo := new(MockZoneRepository)
	personRepo := new(MockPersonRepository)
	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)

	trackingRepo.On("GetByOrderID", ctx, orderID).Return(nil, errs.ErrObjectNotFound).Once()

	factory := newStatusUpdateUoW(zoneRepo, personRepo, orderRepo, trackingRepo)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		orderID, tracking.StatusPickedUp, "", "",
		tracking.FailureReasonUnknown, kernel.NewUUID(), false)
	require.NoError(t, err)

	handler := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrTrackingNotFound)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)
	courier := newActivePerson(t)
	record := newAssignedTracking(t, testOrder.ID(), courier.ID(), testOrder.UserID())

	zoneRepo := new(MockZoneRepository)
	personRepo := new(MockPersonRepository)
	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)

	trackingRepo.On("GetByOrderID", ctx, testOrder.ID()).Return(record, nil).Once()

	factory := newStatusUpdateUoW(zoneRepo, personRepo, orderRepo, trackingRepo)

	// Delivered straight from Assigned skips the whole journey
	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		testOrder.ID(), tracking.StatusDelivered, "", "",
		tracking.FailureReasonUnknown, courier.ID(), false)
	require.NoError(t, err)

	handler := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, tracking.StatusAssigned, record.Status())
	trackingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestNewUpdateDeliveryStatusCommand(t *testing.T) {
	t.Run("requires_failure_reason_for_failed_status", func(t *testing.T) {
		_, err := commands.NewUpdateDeliveryStatusCommand(
			kernel.NewUUID(), tracking.StatusFailed, "", "",
			tracking.FailureReasonUnknown, kernel.NewUUID(), false)
		require.ErrorIs(t, err, tracking.ErrFailureReasonIsRequired)
	})

	t.Run("requires_actor_without_admin_override", func(t *testing.T) {
		_, err := commands.NewUpdateDeliveryStatusCommand(
			kernel.NewUUID(), tracking.StatusPickedUp, "", "",
			tracking.FailureReasonUnknown, kernel.UUID{}, false)
		require.ErrorIs(t, err, commands.ErrActorIsRequired)
	})
}
