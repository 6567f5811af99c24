package commands_test

import (
	"testing"

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

func newAssignUoW(
	zoneRepo *MockZoneRepository,
	personRepo *MockPersonRepository,
	orderRepo *MockOrderRepository,
	trackingRepo *MockTrackingRepository,
) (*MockUoW, *MockUoWFactory) {
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
	return uow, factory
}

func TestAssignDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)
	courier := newActivePerson(t)
	testZone := newZoneWithAssignment(t, courier, 5)

	zoneRepo := new(MockZoneRepository)
	personRepo := new(MockPersonRepository)
	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	trackingRepo.On("ExistsForOrder", ctx, testOrder.ID()).Return(false, nil).Once()
	zoneRepo.On("FindActiveByCityPincode", ctx, "Pune", "411001").
		Return([]*zone.Zone{testZone}, nil).Once()
	zoneRepo.On("GetForUpdate", ctx, testZone.ID()).Return(testZone, nil).Once()
	personRepo.On("GetByIDs", ctx, mock.Anything).
		Return([]*person.DeliveryPerson{courier}, nil).Once()
	zoneRepo.On("Update", ctx, testZone).Return(nil).Once()
	personRepo.On("Update", ctx, courier).Return(nil).Once()
	orderRepo.On("Update", ctx, testOrder).Return(nil).Once()
	trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Tracking")).Return(nil).Once()

	uow, factory := newAssignUoW(zoneRepo, personRepo, orderRepo, trackingRepo)

	cmd, err := commands.NewAssignDeliveryCommand(testOrder.ID())
	require.NoError(t, err)

	handler := commands.NewAssignDeliveryCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Assigned)
	require.NotNil(t, result.DeliveryPersonID)
	assert.True(t, result.DeliveryPersonID.IsEqual(courier.ID()))
	require.NotNil(t, result.EstimatedDelivery)

	// One slot taken, one delivery counted, order confirmed
	assert.Equal(t, 1, testZone.CurrentLoad())
	assert.Equal(t, 1, courier.TotalDeliveries())
	assert.Equal(t, order.StatusConfirmed, testOrder.Status())

	added := trackingRepo.Calls[1].Arguments[1].(*tracking.Tracking)
	assert.Equal(t, tracking.StatusAssigned, added.Status())
	assert.True(t, added.OrderID().IsEqual(testOrder.ID()))

	zoneRepo.AssertExpectations(t)
	personRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	uow.AssertCalled(t, "Commit", ctx)
}

func TestAssignDeliveryCommandHandler_Handle_IdempotentWhenTrackingExists(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)
	courier := newActivePerson(t)
	existing := newAssignedTracking(t, testOrder.ID(), courier.ID(), testOrder.UserID())

	zoneRepo := new(MockZoneRepository)
	personRepo := new(MockPersonRepository)
	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	trackingRepo.On("ExistsForOrder", ctx, testOrder.ID()).Return(true, nil).Once()
	trackingRepo.On("GetByOrderID", ctx, testOrder.ID()).Return(existing, nil).Once()
	personRepo.On("Get", ctx, courier.ID()).Return(courier, nil).Once()
	zoneRepo.On("FindActiveByCityPincode", ctx, "Pune", "411001").
		Return([]*zone.Zone{}, nil).Once()

	uow, factory := newAssignUoW(zoneRepo, personRepo, orderRepo, trackingRepo)

	cmd, err := commands.NewAssignDeliveryCommand(testOrder.ID())
	require.NoError(t, err)

	handler := commands.NewAssignDeliveryCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Assigned)
	assert.True(t, result.DeliveryPersonID.IsEqual(courier.ID()))
	assert.Equal(t, courier.Name(), result.DeliveryPersonName)

	// No second assignment happens
	zoneRepo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	trackingRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignDeliveryCommandHandler_Handle_NoZone(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)

	zoneRepo := new(MockZoneRepository)
	personRepo := new(MockPersonRepository)
	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	trackingRepo.On("ExistsForOrder", ctx, testOrder.ID()).Return(false, nil).Once()
	zoneRepo.On("FindActiveByCityPincode", ctx, "Pune", "411001").
		Return([]*zone.Zone{}, nil).Once()

	_, factory := newAssignUoW(zoneRepo, personRepo, orderRepo, trackingRepo)

	cmd, err := commands.NewAssignDeliveryCommand(testOrder.ID())
	require.NoError(t, err)

	handler := commands.NewAssignDeliveryCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, result.Assigned)
	assert.NotEmpty(t, result.Reason)

	// Order stays pending for the retry job
	assert.Equal(t, order.StatusPending, testOrder.Status())
	trackingRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAssignDeliveryCommandHandler_Handle_NoCandidate(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)
	courier := newActivePerson(t)
	testZone := newZoneWithAssignment(t, courier, 1)
	require.NoError(t, testZone.IncrementLoad(courier.ID())) // at capacity

	zoneRepo := new(MockZoneRepository)
	personRepo := new(MockPersonRepository)
	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	trackingRepo.On("ExistsForOrder", ctx, testOrder.ID()).Return(false, nil).Once()
	zoneRepo.On("FindActiveByCityPincode", ctx, "Pune", "411001").
		Return([]*zone.Zone{testZone}, nil).Once()
	zoneRepo.On("GetForUpdate", ctx, testZone.ID()).Return(testZone, nil).Once()
	personRepo.On("GetByIDs", ctx, mock.Anything).
		Return([]*person.DeliveryPerson{}, nil).Once()

	_, factory := newAssignUoW(zoneRepo, personRepo, orderRepo, trackingRepo)

	cmd, err := commands.NewAssignDeliveryCommand(testOrder.ID())
	require.NoError(t, err)

	handler := commands.NewAssignDeliveryCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, result.Assigned)
	assert.NotEmpty(t, result.Reason)
	trackingRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAssignDeliveryCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()

	zoneRepo := new(MockZoneRepository)
	personRepo := new(MockPersonRepository)
	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)

	orderRepo.On("Get", ctx, orderID).Return(nil, errs.ErrObjectNotFound).Once()

	_, factory := newAssignUoW(zoneRepo, personRepo, orderRepo, trackingRepo)

	cmd, err := commands.NewAssignDeliveryCommand(orderID)
	require.NoError(t, err)

	handler := commands.NewAssignDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderNotFound)
}

func TestAssignDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignDeliveryCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewAssignDeliveryCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAssignDeliveryCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
