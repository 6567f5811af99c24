package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrItemsAreRequired is returned when checking out with an empty item snapshot.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrOrderAlreadyAssigned is returned when auto-assigning an order that already has a delivery person.
	ErrOrderAlreadyAssigned = errors.New("order already has an assigned delivery person")
)

// Order is the aggregate root for a customer purchase. It exclusively owns
// its line-item and shipping-address snapshots: both are captured at checkout
// and carry no live references to catalog or cart state.
//
// Invariants:
//   - at least one line item
//   - totalAmount equals the sum of item subtotals, fixed at construction
//   - status transitions follow the table in Status
//   - a delivery person is present exactly when the status is past Pending
//     and not Cancelled
//
// The order's status is authoritative only up to assignment. From the moment
// a tracking record exists, DeliveryTracking is the source of truth for
// delivery progress and the order status is a recomputed projection applied
// through ApplyDeliveryProgress.
type Order struct {
	id     kernel.UUID
	userID kernel.UUID

	items           []Item
	shippingAddress kernel.Address
	totalAmount     float64

	paymentMethod PaymentMethod
	paymentStatus PaymentStatus

	status                 Status
	assignedDeliveryPerson *kernel.UUID
	estimatedDelivery      *time.Time

	deliveryNotes string
	deliveryProof string
	deliveryDate  *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order from a checkout snapshot. The cart must
// have produced at least one line item; the total is computed from the
// snapshot, never supplied by the caller.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - userID: the purchasing customer (must be a valid UUID)
//   - items: non-empty line-item snapshot
//   - shippingAddress: validated delivery address snapshot
//   - paymentMethod: how the customer paid
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []Item,
	shippingAddress kernel.Address,
	paymentMethod PaymentMethod,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		paymentStatus: PaymentPending,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.setShippingAddress(shippingAddress),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its full delivery
// state.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []Item,
	shippingAddress kernel.Address,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
	assignedDeliveryPerson *kernel.UUID,
	estimatedDelivery *time.Time,
	deliveryNotes, deliveryProof string,
	deliveryDate *time.Time,
) (*Order, error) {
	o := &Order{
		estimatedDelivery: estimatedDelivery,
		deliveryNotes:     deliveryNotes,
		deliveryProof:     deliveryProof,
		deliveryDate:      deliveryDate,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.setShippingAddress(shippingAddress),
		o.setPaymentMethod(paymentMethod),
		o.setPaymentStatus(paymentStatus),
		o.setStatus(status),
		o.setAssignedDeliveryPerson(assignedDeliveryPerson),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the purchasing customer's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns a copy of the line-item snapshot.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// ShippingAddress returns the address snapshot captured at checkout.
func (o *Order) ShippingAddress() kernel.Address {
	return o.shippingAddress
}

// TotalAmount returns the order total computed from the item snapshot.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// PaymentMethod returns how the customer paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the settlement state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// AssignedDeliveryPerson returns the assigned person's ID, nil if unassigned.
func (o *Order) AssignedDeliveryPerson() *kernel.UUID {
	return o.assignedDeliveryPerson
}

// EstimatedDelivery returns the promised delivery time, nil before assignment.
func (o *Order) EstimatedDelivery() *time.Time {
	return o.estimatedDelivery
}

// DeliveryNotes returns the courier's latest notes.
func (o *Order) DeliveryNotes() string {
	return o.deliveryNotes
}

// DeliveryProof returns the proof-of-delivery reference (image URL).
func (o *Order) DeliveryProof() string {
	return o.deliveryProof
}

// DeliveryDate returns when the order was delivered, nil until then.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// IsAssigned reports whether a delivery person holds this order.
func (o *Order) IsAssigned() bool {
	return o.assignedDeliveryPerson != nil
}

// AssignDeliveryPerson confirms the order with the given delivery person and
// promised delivery time. Legal from Pending (first assignment) and from
// Confirmed (manual reassignment); later stages reject the change.
func (o *Order) AssignDeliveryPerson(deliveryPersonID kernel.UUID, estimatedDelivery time.Time) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(StatusConfirmed)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedDeliveryPerson = &deliveryPersonID
	o.estimatedDelivery = &estimatedDelivery
	return nil
}

// Cancel cancels the order. Legal only before shipment (Pending/Confirmed).
func (o *Order) Cancel() error {
	newStatus, err := o.status.TransitionTo(StatusCancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ApplyDeliveryProgress applies a status projected from the authoritative
// tracking record. Projections that would not move the order (for example a
// Failed attempt that keeps it OutForDelivery) are accepted as no-ops; a
// projection that contradicts the transition table is rejected.
func (o *Order) ApplyDeliveryProgress(projected Status) error {
	if projected == o.status {
		return nil
	}

	newStatus, err := o.status.TransitionTo(projected)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// SetDeliveryNotes records the courier's notes on the order.
func (o *Order) SetDeliveryNotes(notes string) {
	o.deliveryNotes = notes
}

// SetDeliveryProof records the proof-of-delivery reference.
func (o *Order) SetDeliveryProof(proof string) {
	o.deliveryProof = proof
}

// MarkDelivered stamps the delivery date. Called alongside the Delivered
// projection so the customer-facing record carries the completion time.
func (o *Order) MarkDelivered(at time.Time) {
	o.deliveryDate = &at
}

// SetPaymentStatus updates the settlement state.
func (o *Order) SetPaymentStatus(status PaymentStatus) error {
	return o.setPaymentStatus(status)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	total := 0.0
	for _, item := range items {
		total += item.Subtotal()
	}

	o.items = items
	o.totalAmount = total
	return nil
}

func (o *Order) setShippingAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setAssignedDeliveryPerson(id *kernel.UUID) error {
	if id == nil {
		o.assignedDeliveryPerson = nil
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	o.assignedDeliveryPerson = id
	return nil
}
