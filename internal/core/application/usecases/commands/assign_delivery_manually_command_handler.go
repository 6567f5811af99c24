package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/core/domain/model/zone"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var (
	ErrPersonNotFound = errors.New("delivery person not found")
	// ErrPersonNotAssignedToZone is returned when the chosen person holds no
	// assignment in any zone serving the order's address.
	ErrPersonNotAssignedToZone = errors.New("delivery person is not assigned to a zone serving the address")
	// ErrPersonUnavailable is returned when the chosen person cannot take
	// orders (inactive, banned, or suspended).
	ErrPersonUnavailable = errors.New("delivery person is not available")
	// ErrTrackingAlreadyExists is returned when the order already has a
	// tracking record.
	ErrTrackingAlreadyExists = errors.New("order already has a delivery assignment")
)

// AssignDeliveryManuallyCommandHandler handles admin-directed assignment.
// Unlike the coordinator it does not rank candidates: the admin names the
// person, and the handler verifies the person is available and holds spare
// capacity in a zone serving the address. The write sequence and its
// transactional guarantees are the same as automatic assignment.
type AssignDeliveryManuallyCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignDeliveryManuallyCommandHandler creates a handler for manual
// assignment operations.
func NewAssignDeliveryManuallyCommandHandler(uowFactory UoWFactory) AssignDeliveryManuallyCommandHandler {
	return AssignDeliveryManuallyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manual assignment command. Unlike automatic
// assignment, every failure here is a hard error: the admin named a specific
// person, so an unusable person or a missing zone is reported, not retried.
func (h AssignDeliveryManuallyCommandHandler) Handle(
	ctx context.Context,
	cmd AssignDeliveryManuallyCommand,
) (AssignmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	trackingRepo := uow.TrackingRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AssignmentResult{}, ErrOrderNotFound
	}
	if err != nil {
		return AssignmentResult{}, err
	}

	exists, err := trackingRepo.ExistsForOrder(ctx, aggregate.ID())
	if err != nil {
		return AssignmentResult{}, err
	}
	if exists {
		return AssignmentResult{}, ErrTrackingAlreadyExists
	}

	candidate, err := uow.DeliveryPersonRepository().Get(ctx, cmd.DeliveryPersonID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AssignmentResult{}, ErrPersonNotFound
	}
	if err != nil {
		return AssignmentResult{}, err
	}
	if !candidate.IsAvailable() {
		return AssignmentResult{}, ErrPersonUnavailable
	}

	locked, err := h.lockZoneWithAssignment(
		ctx, uow.ZoneRepository(), aggregate.ShippingAddress(), candidate.ID())
	if err != nil {
		return AssignmentResult{}, err
	}

	now := time.Now().UTC()
	eta := now.Add(deliveryPromise)

	if err = locked.IncrementLoad(candidate.ID()); err != nil {
		return AssignmentResult{}, err
	}
	candidate.RecordAssignment()

	if err = aggregate.AssignDeliveryPerson(candidate.ID(), eta); err != nil {
		return AssignmentResult{}, err
	}

	record, err := tracking.NewTracking(
		kernel.NewUUID(), aggregate.ID(), candidate.ID(), aggregate.UserID(),
		aggregate.ShippingAddress(), eta, now)
	if err != nil {
		return AssignmentResult{}, err
	}

	if err = uow.ZoneRepository().Update(ctx, locked); err != nil {
		return AssignmentResult{}, err
	}
	if err = uow.DeliveryPersonRepository().Update(ctx, candidate); err != nil {
		return AssignmentResult{}, err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return AssignmentResult{}, err
	}
	if err = trackingRepo.Add(ctx, record); err != nil {
		return AssignmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignmentResult{}, err
	}

	return resultFromTracking(record, candidate, locked.Name()), nil
}

// lockZoneWithAssignment finds the zone serving the address that carries the
// person's assignment and re-reads it under a row lock.
func (h AssignDeliveryManuallyCommandHandler) lockZoneWithAssignment(
	ctx context.Context,
	zoneRepo ports.ZoneRepository,
	address kernel.Address,
	deliveryPersonID kernel.UUID,
) (*zone.Zone, error) {
	zones, err := zoneRepo.FindActiveByCityPincode(ctx, address.City(), address.Pincode())
	if err != nil {
		return nil, err
	}

	for _, z := range zones {
		if !z.Matches(address) {
			continue
		}
		if _, err = z.AssignmentFor(deliveryPersonID); err != nil {
			continue
		}
		return zoneRepo.GetForUpdate(ctx, z.ID())
	}

	return nil, ErrPersonNotAssignedToZone
}
