package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/pkg/guard"
)

var (
	ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
		"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
	)
	// ErrActorIsRequired is returned when neither an acting delivery person
	// nor the admin override is supplied.
	ErrActorIsRequired = errors.New("an acting delivery person or admin override is required")
)

// UpdateDeliveryStatusCommand advances a delivery to the given status.
// Notes and proof are optional; a failure reason is mandatory when the target
// status is Failed and ignored otherwise. The actor identifies the delivery
// person making the change; adminOverride lets back-office staff update any
// delivery.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	status        tracking.Status
	notes         string
	proof         string
	failureReason tracking.FailureReason
	actorPersonID kernel.UUID
	adminOverride bool

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to move a delivery to the
// given status.
//
// Parameters:
//   - orderID: the tracked order (must be a valid UUID)
//   - status: the target tracking status
//   - notes: optional courier notes
//   - proof: optional proof-of-delivery reference
//   - failureReason: required when status is Failed
//   - actorPersonID: the acting delivery person; may be zero with adminOverride
//   - adminOverride: bypasses the assigned-person authorization check
func NewUpdateDeliveryStatusCommand(
	orderID kernel.UUID,
	status tracking.Status,
	notes, proof string,
	failureReason tracking.FailureReason,
	actorPersonID kernel.UUID,
	adminOverride bool,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		notes:         notes,
		proof:         proof,
		adminOverride: adminOverride,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setFailureReason(status, failureReason),
		cmd.setActor(actorPersonID, adminOverride),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDeliveryStatusCommandIsNotConstructed if validation fails.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// OrderID returns the tracked order's identifier.
func (c UpdateDeliveryStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target tracking status.
func (c UpdateDeliveryStatusCommand) Status() tracking.Status {
	return c.status
}

// Notes returns the optional courier notes.
func (c UpdateDeliveryStatusCommand) Notes() string {
	return c.notes
}

// Proof returns the optional proof-of-delivery reference.
func (c UpdateDeliveryStatusCommand) Proof() string {
	return c.proof
}

// FailureReason returns the classified reason for a Failed update.
func (c UpdateDeliveryStatusCommand) FailureReason() tracking.FailureReason {
	return c.failureReason
}

// ActorPersonID returns the acting delivery person's identifier.
func (c UpdateDeliveryStatusCommand) ActorPersonID() kernel.UUID {
	return c.actorPersonID
}

// AdminOverride reports whether the authorization check is bypassed.
func (c UpdateDeliveryStatusCommand) AdminOverride() bool {
	return c.adminOverride
}

func (c *UpdateDeliveryStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setStatus(status tracking.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateDeliveryStatusCommand) setFailureReason(status tracking.Status, reason tracking.FailureReason) error {
	if status != tracking.StatusFailed {
		return nil
	}
	if err := reason.Validate(); err != nil {
		return errors.Join(tracking.ErrFailureReasonIsRequired, err)
	}

	c.failureReason = reason
	return nil
}

func (c *UpdateDeliveryStatusCommand) setActor(actorPersonID kernel.UUID, adminOverride bool) error {
	if err := actorPersonID.Validate(); err != nil {
		if adminOverride {
			return nil
		}
		return ErrActorIsRequired
	}

	c.actorPersonID = actorPersonID
	return nil
}
