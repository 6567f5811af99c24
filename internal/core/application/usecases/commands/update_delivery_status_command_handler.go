package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/person"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var (
	ErrTrackingNotFound = errors.New("no tracking record found for order")
	// ErrActorNotAssigned is returned when a delivery person tries to update
	// a delivery held by someone else.
	ErrActorNotAssigned = errors.New("delivery is assigned to a different delivery person")
	// ErrStatusNotUpdatable is returned for target statuses that are not
	// courier-reported milestones (Pending, Assigned).
	ErrStatusNotUpdatable = errors.New("status cannot be set through a delivery update")
)

// UpdateDeliveryStatusCommandHandler advances a delivery through its
// lifecycle. One transaction covers everything a status change touches: the
// tracking record, the courier's performance counters, the order's projected
// status, and — when the attempt concludes — the zone capacity slot.
//
// The zone slot is released exactly once per delivery, on the transition into
// Delivered or Failed. The later Failed → Returned move does not touch the
// zone again.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery status
// updates.
func NewUpdateDeliveryStatusCommandHandler(uowFactory UoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// Only the assigned delivery person may update a delivery unless the command
// carries the admin override. Illegal transitions are rejected by the
// tracking aggregate and leave every aggregate untouched.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	trackingRepo := uow.TrackingRepository()

	record, err := trackingRepo.GetByOrderID(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrTrackingNotFound
	}
	if err != nil {
		return err
	}

	if !cmd.AdminOverride() && !record.DeliveryPersonID().IsEqual(cmd.ActorPersonID()) {
		return ErrActorNotAssigned
	}

	now := time.Now().UTC()
	if err = h.applyStatus(record, cmd, now); err != nil {
		return err
	}

	if cmd.Status().IsAttemptOutcome() {
		if err = h.concludeAttempt(ctx, uow, record, cmd.Status()); err != nil {
			return err
		}
	}

	if err = h.projectOrderStatus(ctx, uow.OrderRepository(), record, cmd, now); err != nil {
		return err
	}

	if err = trackingRepo.Update(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h UpdateDeliveryStatusCommandHandler) applyStatus(
	record *tracking.Tracking,
	cmd UpdateDeliveryStatusCommand,
	now time.Time,
) error {
	switch cmd.Status() {
	case tracking.StatusPickedUp:
		return record.MarkPickedUp(now)
	case tracking.StatusInTransit:
		return record.MarkInTransit(now)
	case tracking.StatusOutForDelivery:
		return record.MarkOutForDelivery(now)
	case tracking.StatusDelivered:
		return record.MarkDelivered(now, cmd.Proof(), cmd.Notes())
	case tracking.StatusFailed:
		return record.MarkFailed(now, cmd.FailureReason(), cmd.Notes())
	case tracking.StatusReturned:
		return record.MarkReturned(now)
	default:
		return ErrStatusNotUpdatable
	}
}

// concludeAttempt updates the courier's counters and releases the zone
// capacity slot when the delivery reaches Delivered or Failed.
func (h UpdateDeliveryStatusCommandHandler) concludeAttempt(
	ctx context.Context,
	uow UoW,
	record *tracking.Tracking,
	status tracking.Status,
) error {
	personRepo := uow.DeliveryPersonRepository()

	courier, err := personRepo.Get(ctx, record.DeliveryPersonID())
	if err != nil {
		return err
	}

	if status == tracking.StatusDelivered {
		courier.RecordSuccess()
	} else {
		courier.RecordFailure()
	}

	if err = personRepo.Update(ctx, courier); err != nil {
		return err
	}

	return h.releaseZoneSlot(ctx, uow.ZoneRepository(), record, courier)
}

// releaseZoneSlot decrements the courier's load in the zone serving the
// delivery address. The zone or the assignment may have been removed since
// assignment; the delivery still concludes, there is just no slot to free.
func (h UpdateDeliveryStatusCommandHandler) releaseZoneSlot(
	ctx context.Context,
	zoneRepo ports.ZoneRepository,
	record *tracking.Tracking,
	courier *person.DeliveryPerson,
) error {
	address := record.DeliveryAddress()
	zones, err := zoneRepo.FindActiveByCityPincode(ctx, address.City(), address.Pincode())
	if err != nil {
		return err
	}

	for _, z := range zones {
		if _, err = z.AssignmentFor(courier.ID()); err != nil {
			continue
		}

		locked, lockErr := zoneRepo.GetForUpdate(ctx, z.ID())
		if lockErr != nil {
			return lockErr
		}
		if err = locked.DecrementLoad(courier.ID()); err != nil {
			return err
		}
		return zoneRepo.Update(ctx, locked)
	}

	return nil
}

func (h UpdateDeliveryStatusCommandHandler) projectOrderStatus(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	record *tracking.Tracking,
	cmd UpdateDeliveryStatusCommand,
	now time.Time,
) error {
	aggregate, err := orderRepo.Get(ctx, record.OrderID())
	if err != nil {
		return err
	}

	projected := services.ProjectOrderStatus(record.Status(), aggregate.Status())
	if err = aggregate.ApplyDeliveryProgress(projected); err != nil {
		return err
	}

	if record.Status() == tracking.StatusDelivered {
		aggregate.MarkDelivered(now)
		if cmd.Proof() != "" {
			aggregate.SetDeliveryProof(cmd.Proof())
		}
	}
	if cmd.Notes() != "" {
		aggregate.SetDeliveryNotes(cmd.Notes())
	}

	return orderRepo.Update(ctx, aggregate)
}
