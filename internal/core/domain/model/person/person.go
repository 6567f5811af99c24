package person

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	minRating = 0.0
	maxRating = 5.0
)

// Domain errors for delivery person operations.
var (
	// ErrNameIsRequired is returned when attempting to create a delivery person without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a delivery person without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrReasonIsRequired is returned when suspending or banning without a reason.
	ErrReasonIsRequired = errs.NewValueIsRequiredError("reason")
	// ErrDeliveryPersonIsNotConstructed is returned when using an improperly initialized DeliveryPerson.
	ErrDeliveryPersonIsNotConstructed = errors.New(
		"DeliveryPerson must be created via NewDeliveryPerson constructor")
	// ErrCountersUnderflow is returned when restoring counters that contradict each other.
	ErrCountersUnderflow = errs.NewValueIsInvalidError(
		"successfulDeliveries + failedDeliveries must not exceed totalDeliveries")
)

// DeliveryPerson is the aggregate root for a courier working the delivery
// zones. It carries identity, contact details, working status, and the
// cumulative performance counters the assignment selector ranks on.
//
// Invariants:
//   - linked to exactly one user account (userID, 1:1)
//   - name and phone are non-empty
//   - rating stays within [0, 5]
//   - totalDeliveries, successfulDeliveries, failedDeliveries are
//     non-negative and only ever grow; successful + failed never exceeds total
//
// The counters are mutated exclusively by the delivery coordinator
// (RecordAssignment on dispatch, RecordSuccess/RecordFailure on terminal
// tracking transitions), never by admin edits, so they remain an audit-grade
// record of the person's history.
//
// Example:
//
//	p, err := NewDeliveryPerson(kernel.NewUUID(), userID, "Ravi Kumar", "+91-9000000000", VehicleBike)
//	if err != nil {
//	    // handle validation error
//	}
//	p.RecordAssignment()
//	p.RecordSuccess()
//	rate := p.SuccessRate() // 1.0
type DeliveryPerson struct {
	id     kernel.UUID
	userID kernel.UUID

	name          string
	phone         string
	vehicleType   VehicleType
	vehicleNumber string

	status        Status
	isBanned      bool
	bannedAt      *time.Time
	banReason     string
	isSuspended   bool
	suspendedAt   *time.Time
	suspendReason string

	rating               float64
	totalDeliveries      int
	successfulDeliveries int
	failedDeliveries     int

	guard guard.ConstructorGuard
}

// NewDeliveryPerson creates a delivery person in Active status with zeroed
// performance counters. This is the admin-creation/approval path; all
// historical state starts empty.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - userID: identifier of the linked user account (must be a valid UUID)
//   - name: human-readable name (must be non-empty)
//   - phone: contact number used in assignment results (must be non-empty)
//   - vehicleType: one of bike/scooter/auto/van/car
//
// Returns the constructed aggregate or an aggregated validation error.
func NewDeliveryPerson(
	id kernel.UUID,
	userID kernel.UUID,
	name string,
	phone string,
	vehicleType VehicleType,
) (*DeliveryPerson, error) {
	p := &DeliveryPerson{
		status: StatusActive,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setUserID(userID),
		p.setName(name),
		p.setPhone(phone),
		p.setVehicleType(vehicleType),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Sanctions bundles the ban and suspension state restored from persistence.
// It exists to keep RestoreDeliveryPerson's signature manageable; domain code
// mutates this state only through Suspend, Reinstate, and Ban.
type Sanctions struct {
	IsBanned      bool
	BannedAt      *time.Time
	BanReason     string
	IsSuspended   bool
	SuspendedAt   *time.Time
	SuspendReason string
}

// RestoreDeliveryPerson reconstructs a delivery person from persistence,
// including status flags and performance counters. The restored aggregate
// behaves identically to one that accumulated the same history through
// domain operations.
func RestoreDeliveryPerson(
	id kernel.UUID,
	userID kernel.UUID,
	name string,
	phone string,
	vehicleType VehicleType,
	vehicleNumber string,
	status Status,
	sanctions Sanctions,
	rating float64,
	totalDeliveries int,
	successfulDeliveries int,
	failedDeliveries int,
) (*DeliveryPerson, error) {
	p := &DeliveryPerson{
		vehicleNumber: vehicleNumber,
		isBanned:      sanctions.IsBanned,
		bannedAt:      sanctions.BannedAt,
		banReason:     sanctions.BanReason,
		isSuspended:   sanctions.IsSuspended,
		suspendedAt:   sanctions.SuspendedAt,
		suspendReason: sanctions.SuspendReason,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setUserID(userID),
		p.setName(name),
		p.setPhone(phone),
		p.setVehicleType(vehicleType),
		p.setStatus(status),
		p.setRating(rating),
		p.setCounters(totalDeliveries, successfulDeliveries, failedDeliveries),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the aggregate was created through a constructor.
func (p *DeliveryPerson) Validate() error {
	if p == nil {
		return ErrDeliveryPersonIsNotConstructed
	}
	return p.guard.Validate(ErrDeliveryPersonIsNotConstructed)
}

// IsEqual compares two delivery persons by identifier.
func (p *DeliveryPerson) IsEqual(other *DeliveryPerson) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the unique identifier.
func (p *DeliveryPerson) ID() kernel.UUID {
	return p.id
}

// UserID returns the identifier of the linked user account.
func (p *DeliveryPerson) UserID() kernel.UUID {
	return p.userID
}

// Name returns the person's name.
func (p *DeliveryPerson) Name() string {
	return p.name
}

// Phone returns the contact phone number.
func (p *DeliveryPerson) Phone() string {
	return p.phone
}

// VehicleType returns the registered vehicle class.
func (p *DeliveryPerson) VehicleType() VehicleType {
	return p.vehicleType
}

// VehicleNumber returns the registration plate, if recorded.
func (p *DeliveryPerson) VehicleNumber() string {
	return p.vehicleNumber
}

// Status returns the current working status.
func (p *DeliveryPerson) Status() Status {
	return p.status
}

// IsBanned reports whether the person is banned.
func (p *DeliveryPerson) IsBanned() bool {
	return p.isBanned
}

// BannedAt returns when the ban was applied, nil if not banned.
func (p *DeliveryPerson) BannedAt() *time.Time {
	return p.bannedAt
}

// BanReason returns the recorded ban reason.
func (p *DeliveryPerson) BanReason() string {
	return p.banReason
}

// IsSuspended reports whether the person is suspended.
func (p *DeliveryPerson) IsSuspended() bool {
	return p.isSuspended
}

// SuspendedAt returns when the suspension was applied, nil if not suspended.
func (p *DeliveryPerson) SuspendedAt() *time.Time {
	return p.suspendedAt
}

// SuspendReason returns the recorded suspension reason.
func (p *DeliveryPerson) SuspendReason() string {
	return p.suspendReason
}

// Rating returns the aggregate customer rating in [0, 5].
func (p *DeliveryPerson) Rating() float64 {
	return p.rating
}

// TotalDeliveries returns the count of deliveries ever assigned.
func (p *DeliveryPerson) TotalDeliveries() int {
	return p.totalDeliveries
}

// SuccessfulDeliveries returns the count of completed deliveries.
func (p *DeliveryPerson) SuccessfulDeliveries() int {
	return p.successfulDeliveries
}

// FailedDeliveries returns the count of failed delivery attempts.
func (p *DeliveryPerson) FailedDeliveries() int {
	return p.failedDeliveries
}

// IsAvailable reports whether the person may receive new assignments.
// A person is available when Active and neither banned nor suspended.
func (p *DeliveryPerson) IsAvailable() bool {
	return p.status == StatusActive && !p.isBanned && !p.isSuspended
}

// SuccessRate returns successfulDeliveries / max(totalDeliveries, 1).
//
// A person with zero deliveries therefore rates 0, ranking below anyone with
// at least one success. That is a deliberate policy: new couriers are
// prioritized by their low load, never by an unearned rate.
func (p *DeliveryPerson) SuccessRate() float64 {
	total := p.totalDeliveries
	if total < 1 {
		total = 1
	}
	return float64(p.successfulDeliveries) / float64(total)
}

// RecordAssignment increments totalDeliveries. Called by the coordinator
// exactly once per created tracking record.
func (p *DeliveryPerson) RecordAssignment() {
	p.totalDeliveries++
}

// RecordSuccess increments successfulDeliveries. Called on the Delivered
// tracking transition.
func (p *DeliveryPerson) RecordSuccess() {
	p.successfulDeliveries++
}

// RecordFailure increments failedDeliveries. Called on the Failed tracking
// transition.
func (p *DeliveryPerson) RecordFailure() {
	p.failedDeliveries++
}

// SetStatus changes the working status. Suspension must go through Suspend so
// a reason is captured; this method rejects direct transitions to Suspended.
func (p *DeliveryPerson) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == StatusSuspended {
		return errs.NewValueIsInvalidError("status: use Suspend to suspend a delivery person")
	}

	p.status = status
	return nil
}

// Suspend marks the person suspended at the given time with a mandatory reason.
func (p *DeliveryPerson) Suspend(reason string, at time.Time) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	p.isSuspended = true
	p.suspendedAt = &at
	p.suspendReason = reason
	p.status = StatusSuspended
	return nil
}

// Reinstate lifts a suspension and returns the person to Active status.
func (p *DeliveryPerson) Reinstate() {
	p.isSuspended = false
	p.suspendedAt = nil
	p.suspendReason = ""
	if p.status == StatusSuspended {
		p.status = StatusActive
	}
}

// Ban permanently blocks the person from assignment with a mandatory reason.
func (p *DeliveryPerson) Ban(reason string, at time.Time) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	p.isBanned = true
	p.bannedAt = &at
	p.banReason = reason
	return nil
}

// SetVehicleNumber records the vehicle registration number.
func (p *DeliveryPerson) SetVehicleNumber(vehicleNumber string) {
	p.vehicleNumber = vehicleNumber
}

// SetRating replaces the aggregate rating. The value must lie in [0, 5].
func (p *DeliveryPerson) SetRating(rating float64) error {
	return p.setRating(rating)
}

func (p *DeliveryPerson) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *DeliveryPerson) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	p.userID = userID
	return nil
}

func (p *DeliveryPerson) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *DeliveryPerson) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	p.phone = phone
	return nil
}

func (p *DeliveryPerson) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	p.vehicleType = vehicleType
	return nil
}

func (p *DeliveryPerson) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	if status == StatusSuspended {
		p.isSuspended = true
	}
	return nil
}

func (p *DeliveryPerson) setRating(rating float64) error {
	if rating < minRating || rating > maxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}
	p.rating = rating
	return nil
}

func (p *DeliveryPerson) setCounters(total, successful, failed int) error {
	if total < 0 {
		return errs.NewValueIsOutOfRangeError("totalDeliveries", total, 0, "unbounded")
	}
	if successful < 0 {
		return errs.NewValueIsOutOfRangeError("successfulDeliveries", successful, 0, "unbounded")
	}
	if failed < 0 {
		return errs.NewValueIsOutOfRangeError("failedDeliveries", failed, 0, "unbounded")
	}
	if successful+failed > total {
		return ErrCountersUnderflow
	}

	p.totalDeliveries = total
	p.successfulDeliveries = successful
	p.failedDeliveries = failed
	return nil
}
