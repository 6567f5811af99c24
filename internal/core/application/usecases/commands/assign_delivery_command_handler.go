package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/person"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/core/domain/model/zone"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

// Orders are promised within a day of assignment.
const deliveryPromise = 24 * time.Hour

// AssignmentResult reports the outcome of an assignment attempt. A missing
// zone or an exhausted candidate pool is a business outcome, not an error:
// the order stays Pending and the retry job picks it up later.
type AssignmentResult struct {
	Assigned            bool
	Reason              string
	DeliveryPersonID    *kernel.UUID
	DeliveryPersonName  string
	DeliveryPersonPhone string
	ZoneName            string
	TrackingID          *kernel.UUID
	EstimatedDelivery   *time.Time
}

const (
	reasonNoZone      = "no active zone serves the delivery address"
	reasonNoCandidate = "no delivery person available in the zone"
)

// AssignDeliveryCommandHandler is the delivery coordinator. It matches the
// order's shipping address to a zone, picks the best available delivery
// person, and records the assignment across all four aggregates — zone load,
// person counters, order status, and the new tracking record — in a single
// transaction. The zone row is locked for the duration, so two concurrent
// assignments against the same zone serialize and the capacity check cannot
// race.
//
// Example:
//
//	handler := NewAssignDeliveryCommandHandler(uowFactory)
//	cmd, _ := NewAssignDeliveryCommand(orderID)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if !result.Assigned {
//	    log.Printf("order left pending: %s", result.Reason)
//	}
type AssignDeliveryCommandHandler struct {
	uowFactory UoWFactory
	selector   services.AssignmentSelector
}

// NewAssignDeliveryCommandHandler creates a handler for automatic delivery
// assignment. Requires a UoWFactory for coordinating transactional updates
// across repositories.
func NewAssignDeliveryCommandHandler(uowFactory UoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		selector:   services.NewAssignmentSelector(),
	}
}

// Handle processes the assignment command.
//
// Assignment is idempotent: if a tracking record already exists for the
// order, the existing assignment is returned instead of creating a second
// one. The storage layer's unique index on the order reference backs this up
// under concurrent requests.
func (h AssignDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd AssignDeliveryCommand,
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
		existing, getErr := trackingRepo.GetByOrderID(ctx, aggregate.ID())
		if getErr != nil {
			return AssignmentResult{}, getErr
		}
		assignee, getErr := uow.DeliveryPersonRepository().Get(ctx, existing.DeliveryPersonID())
		if getErr != nil {
			return AssignmentResult{}, getErr
		}
		served, getErr := h.matchZone(ctx, uow.ZoneRepository(), aggregate.ShippingAddress())
		if getErr != nil {
			return AssignmentResult{}, getErr
		}
		zoneName := ""
		if served != nil {
			zoneName = served.Name()
		}
		return resultFromTracking(existing, assignee, zoneName), nil
	}

	matched, err := h.matchZone(ctx, uow.ZoneRepository(), aggregate.ShippingAddress())
	if err != nil {
		return AssignmentResult{}, err
	}
	if matched == nil {
		return AssignmentResult{Reason: reasonNoZone}, nil
	}

	// Re-read under a row lock: the zone state used for the capacity check
	// must be the state the load increment applies to.
	locked, err := uow.ZoneRepository().GetForUpdate(ctx, matched.ID())
	if err != nil {
		return AssignmentResult{}, err
	}

	assignment, candidate, err := h.selectCandidate(ctx, uow.DeliveryPersonRepository(), locked)
	if errors.Is(err, services.ErrNoCandidateAvailable) {
		return AssignmentResult{Reason: reasonNoCandidate}, nil
	}
	if err != nil {
		return AssignmentResult{}, err
	}

	now := time.Now().UTC()
	eta := now.Add(deliveryPromise)

	if err = locked.IncrementLoad(assignment.DeliveryPersonID()); err != nil {
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

// matchZone finds the first active zone serving the address, in creation
// order.
func (h AssignDeliveryCommandHandler) matchZone(
	ctx context.Context,
	zoneRepo ports.ZoneRepository,
	address kernel.Address,
) (*zone.Zone, error) {
	zones, err := zoneRepo.FindActiveByCityPincode(ctx, address.City(), address.Pincode())
	if err != nil {
		return nil, err
	}

	for _, z := range zones {
		if z.Matches(address) {
			return z, nil
		}
	}
	return nil, nil //nolint:nilnil //absence of a zone is a business outcome
}

func (h AssignDeliveryCommandHandler) selectCandidate(
	ctx context.Context,
	personRepo ports.DeliveryPersonRepository,
	locked *zone.Zone,
) (*zone.Assignment, *person.DeliveryPerson, error) {
	available := locked.AvailableAssignments()
	ids := make([]kernel.UUID, 0, len(available))
	for _, a := range available {
		ids = append(ids, a.DeliveryPersonID())
	}

	persons, err := personRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	return h.selector.Select(locked, persons)
}

func resultFromTracking(
	record *tracking.Tracking,
	assignee *person.DeliveryPerson,
	zoneName string,
) AssignmentResult {
	personID := record.DeliveryPersonID()
	trackingID := record.ID()
	return AssignmentResult{
		Assigned:            true,
		DeliveryPersonID:    &personID,
		DeliveryPersonName:  assignee.Name(),
		DeliveryPersonPhone: assignee.Phone(),
		ZoneName:            zoneName,
		TrackingID:          &trackingID,
		EstimatedDelivery:   record.ExpectedDeliveryTime(),
	}
}
