package tracking

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for tracking operations.
var (
	// ErrTrackingIsNotConstructed is returned when using an improperly initialized Tracking.
	ErrTrackingIsNotConstructed = errors.New("Tracking must be created via NewTracking constructor")
	// ErrRatingBeforeDelivery is returned when rating a delivery that has not completed.
	ErrRatingBeforeDelivery = errors.New("delivery can only be rated after it is delivered")
	// ErrFailureReasonIsRequired is returned when failing a delivery without a reason.
	ErrFailureReasonIsRequired = errs.NewValueIsRequiredError("failureReason")
)

const (
	defaultMaxRetries = 2

	minCustomerRating = 1
	maxCustomerRating = 5
)

// Milestones carries the per-stage timestamps of a tracking record. Each
// field is stamped exactly once, when the corresponding status is first
// entered.
type Milestones struct {
	AssignedAt       *time.Time
	PickedUpAt       *time.Time
	InTransitAt      *time.Time
	OutForDeliveryAt *time.Time
	DeliveredAt      *time.Time
	FailedAt         *time.Time
	ReturnedAt       *time.Time
}

// FailureRecord carries the outcome details of a failed attempt.
type FailureRecord struct {
	Reason FailureReason
	Notes  string
}

// Tracking is the aggregate root for the delivery progress of a single
// order. It is the authoritative record once assignment happens: the order's
// own status is recomputed from it, never the other way around.
//
// Invariants:
//   - exactly one tracking record exists per order
//   - status moves only along the transition table in Status
//   - milestone timestamps are stamped on first entry and never rewritten
//   - a failure reason is present exactly when the status reached Failed
//   - customer rating, when present, is in [1,5] and requires Delivered
type Tracking struct {
	id               kernel.UUID
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID
	userID           kernel.UUID

	status          Status
	deliveryAddress kernel.Address

	expectedDeliveryTime *time.Time
	actualDeliveryTime   *time.Time
	milestones           Milestones

	deliveryProof string
	deliveryNotes string

	failureReason FailureReason
	failureNotes  string

	attemptCount int
	maxRetries   int

	customerRating   *int
	customerFeedback string

	currentLocation    *kernel.GeoPoint
	lastLocationUpdate *time.Time

	guard guard.ConstructorGuard
}

// NewTracking creates the tracking record for a freshly assigned order. The
// record starts in Assigned with the assignment milestone stamped: Pending
// exists only for orders persisted before a courier accepted them, which the
// coordinator never produces.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - orderID: the tracked order (must be a valid UUID)
//   - deliveryPersonID: the courier holding the order (must be a valid UUID)
//   - userID: the customer awaiting the order (must be a valid UUID)
//   - deliveryAddress: destination snapshot copied from the order
//   - expectedDelivery: the promised delivery time
//   - assignedAt: when the assignment happened
func NewTracking(
	id kernel.UUID,
	orderID kernel.UUID,
	deliveryPersonID kernel.UUID,
	userID kernel.UUID,
	deliveryAddress kernel.Address,
	expectedDelivery time.Time,
	assignedAt time.Time,
) (*Tracking, error) {
	t := &Tracking{
		status:               StatusAssigned,
		expectedDeliveryTime: &expectedDelivery,
		milestones:           Milestones{AssignedAt: &assignedAt},
		attemptCount:         1,
		maxRetries:           defaultMaxRetries,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setOrderID(orderID),
		t.setDeliveryPersonID(deliveryPersonID),
		t.setUserID(userID),
		t.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTracking reconstructs a tracking record from persistence.
func RestoreTracking(
	id kernel.UUID,
	orderID kernel.UUID,
	deliveryPersonID kernel.UUID,
	userID kernel.UUID,
	status Status,
	deliveryAddress kernel.Address,
	expectedDeliveryTime *time.Time,
	actualDeliveryTime *time.Time,
	milestones Milestones,
	deliveryProof, deliveryNotes string,
	failure FailureRecord,
	attemptCount, maxRetries int,
	customerRating *int,
	customerFeedback string,
	currentLocation *kernel.GeoPoint,
	lastLocationUpdate *time.Time,
) (*Tracking, error) {
	t := &Tracking{
		expectedDeliveryTime: expectedDeliveryTime,
		actualDeliveryTime:   actualDeliveryTime,
		milestones:           milestones,
		deliveryProof:        deliveryProof,
		deliveryNotes:        deliveryNotes,
		failureReason:        failure.Reason,
		failureNotes:         failure.Notes,
		customerFeedback:     customerFeedback,
		currentLocation:      currentLocation,
		lastLocationUpdate:   lastLocationUpdate,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setOrderID(orderID),
		t.setDeliveryPersonID(deliveryPersonID),
		t.setUserID(userID),
		t.setStatus(status),
		t.setDeliveryAddress(deliveryAddress),
		t.setAttempts(attemptCount, maxRetries),
		t.setCustomerRating(customerRating),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the tracking record was created through a constructor.
func (t *Tracking) Validate() error {
	if t == nil {
		return ErrTrackingIsNotConstructed
	}
	return t.guard.Validate(ErrTrackingIsNotConstructed)
}

// IsEqual compares two tracking records by identifier.
func (t *Tracking) IsEqual(other *Tracking) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the unique identifier.
func (t *Tracking) ID() kernel.UUID {
	return t.id
}

// OrderID returns the tracked order's identifier.
func (t *Tracking) OrderID() kernel.UUID {
	return t.orderID
}

// DeliveryPersonID returns the courier holding the order.
func (t *Tracking) DeliveryPersonID() kernel.UUID {
	return t.deliveryPersonID
}

// UserID returns the customer awaiting the order.
func (t *Tracking) UserID() kernel.UUID {
	return t.userID
}

// Status returns the current delivery status.
func (t *Tracking) Status() Status {
	return t.status
}

// DeliveryAddress returns the destination snapshot.
func (t *Tracking) DeliveryAddress() kernel.Address {
	return t.deliveryAddress
}

// ExpectedDeliveryTime returns the promised delivery time.
func (t *Tracking) ExpectedDeliveryTime() *time.Time {
	return t.expectedDeliveryTime
}

// ActualDeliveryTime returns when delivery completed, nil until Delivered.
func (t *Tracking) ActualDeliveryTime() *time.Time {
	return t.actualDeliveryTime
}

// Milestones returns the per-stage timestamps.
func (t *Tracking) Milestones() Milestones {
	return t.milestones
}

// DeliveryProof returns the proof-of-delivery reference (image URL).
func (t *Tracking) DeliveryProof() string {
	return t.deliveryProof
}

// DeliveryNotes returns the courier's notes.
func (t *Tracking) DeliveryNotes() string {
	return t.deliveryNotes
}

// FailureReason returns why the delivery failed; FailureReasonUnknown while
// no attempt has failed.
func (t *Tracking) FailureReason() FailureReason {
	return t.failureReason
}

// FailureNotes returns the courier's notes on the failure.
func (t *Tracking) FailureNotes() string {
	return t.failureNotes
}

// AttemptCount returns the number of delivery attempts made.
func (t *Tracking) AttemptCount() int {
	return t.attemptCount
}

// MaxRetries returns the retry ceiling for failed attempts.
func (t *Tracking) MaxRetries() int {
	return t.maxRetries
}

// CanRetry reports whether another delivery attempt is allowed.
func (t *Tracking) CanRetry() bool {
	return t.attemptCount <= t.maxRetries
}

// CustomerRating returns the customer's rating, nil until rated.
func (t *Tracking) CustomerRating() *int {
	return t.customerRating
}

// CustomerFeedback returns the customer's free-form feedback.
func (t *Tracking) CustomerFeedback() string {
	return t.customerFeedback
}

// CurrentLocation returns the courier's last reported position, nil if never
// reported.
func (t *Tracking) CurrentLocation() *kernel.GeoPoint {
	return t.currentLocation
}

// LastLocationUpdate returns when the position was last reported.
func (t *Tracking) LastLocationUpdate() *time.Time {
	return t.lastLocationUpdate
}

// MarkPickedUp records that the parcel was collected from the warehouse.
func (t *Tracking) MarkPickedUp(at time.Time) error {
	if err := t.advance(StatusPickedUp); err != nil {
		return err
	}
	t.milestones.PickedUpAt = &at
	return nil
}

// MarkInTransit records that the parcel entered the delivery network.
func (t *Tracking) MarkInTransit(at time.Time) error {
	if err := t.advance(StatusInTransit); err != nil {
		return err
	}
	t.milestones.InTransitAt = &at
	return nil
}

// MarkOutForDelivery records that the courier started the final leg.
func (t *Tracking) MarkOutForDelivery(at time.Time) error {
	if err := t.advance(StatusOutForDelivery); err != nil {
		return err
	}
	t.milestones.OutForDeliveryAt = &at
	return nil
}

// MarkDelivered completes the delivery. Proof and notes are optional; the
// actual delivery time is stamped alongside the milestone.
func (t *Tracking) MarkDelivered(at time.Time, proof, notes string) error {
	if err := t.advance(StatusDelivered); err != nil {
		return err
	}

	t.milestones.DeliveredAt = &at
	t.actualDeliveryTime = &at
	if proof != "" {
		t.deliveryProof = proof
	}
	if notes != "" {
		t.deliveryNotes = notes
	}
	return nil
}

// MarkFailed records a failed delivery attempt. A classified reason is
// mandatory; free-form details go into the failure notes.
func (t *Tracking) MarkFailed(at time.Time, reason FailureReason, notes string) error {
	if err := reason.Validate(); err != nil {
		return errors.Join(ErrFailureReasonIsRequired, err)
	}
	if err := t.advance(StatusFailed); err != nil {
		return err
	}

	t.milestones.FailedAt = &at
	t.failureReason = reason
	t.failureNotes = notes
	return nil
}

// MarkReturned records that the failed parcel went back to the warehouse.
func (t *Tracking) MarkReturned(at time.Time) error {
	if err := t.advance(StatusReturned); err != nil {
		return err
	}
	t.milestones.ReturnedAt = &at
	return nil
}

// RateDelivery records the customer's rating and feedback. Allowed only
// after the order was delivered; the rating must be in [1,5].
func (t *Tracking) RateDelivery(rating int, feedback string) error {
	if t.status != StatusDelivered {
		return ErrRatingBeforeDelivery
	}
	if rating < minCustomerRating || rating > maxCustomerRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, minCustomerRating, maxCustomerRating)
	}

	t.customerRating = &rating
	t.customerFeedback = feedback
	return nil
}

// UpdateLocation records the courier's reported position.
func (t *Tracking) UpdateLocation(location kernel.GeoPoint, at time.Time) {
	t.currentLocation = &location
	t.lastLocationUpdate = &at
}

// SetDeliveryNotes records the courier's notes.
func (t *Tracking) SetDeliveryNotes(notes string) {
	t.deliveryNotes = notes
}

func (t *Tracking) advance(next Status) error {
	newStatus, err := t.status.TransitionTo(next)
	if err != nil {
		return err
	}
	t.status = newStatus
	return nil
}

func (t *Tracking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tracking) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	t.orderID = orderID
	return nil
}

func (t *Tracking) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}
	t.deliveryPersonID = deliveryPersonID
	return nil
}

func (t *Tracking) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	t.userID = userID
	return nil
}

func (t *Tracking) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}

func (t *Tracking) setDeliveryAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	t.deliveryAddress = address
	return nil
}

func (t *Tracking) setAttempts(attemptCount, maxRetries int) error {
	if attemptCount < 1 {
		return errs.NewValueIsOutOfRangeError("attemptCount", attemptCount, 1, "unbounded")
	}
	if maxRetries < 0 {
		return errs.NewValueIsOutOfRangeError("maxRetries", maxRetries, 0, "unbounded")
	}

	t.attemptCount = attemptCount
	t.maxRetries = maxRetries
	return nil
}

func (t *Tracking) setCustomerRating(rating *int) error {
	if rating == nil {
		t.customerRating = nil
		return nil
	}
	if *rating < minCustomerRating || *rating > maxCustomerRating {
		return errs.NewValueIsOutOfRangeError("rating", *rating, minCustomerRating, maxCustomerRating)
	}

	t.customerRating = rating
	return nil
}
