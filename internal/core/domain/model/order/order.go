package order

import (
	"errors"
	"fmt"
	"time"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/pkg/errs"
	"deliverya/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder constructors. This ensures all orders
// are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a delivery request in the system. It is the aggregate root
// that manages the order lifecycle from creation through acceptance by a
// courier to completion and settlement.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid client
//   - Origin and destination are validated geographic points
//   - Price must be positive
//   - A courier is assigned exactly once, when the order is accepted
//   - PaymentPaid is only reachable on a completed order
//   - Each lifecycle timestamp is written by its own transition and never
//     changed afterwards
//
// Distance and estimated delivery time are derived once at creation from the
// great-circle distance between origin and destination and stored with the
// order, so later reads never recompute them.
type Order struct {
	id kernel.UUID

	// client side, immutable after creation
	clientID   kernel.UUID
	clientName string

	// courier side, set once on Accept (nil while pending)
	courierID   *kernel.UUID
	courierName string

	origin           kernel.GeoPoint
	destination      kernel.GeoPoint
	originLabel      string
	destinationLabel string
	description      string

	price      float64
	distanceKm float64
	etaMinutes int

	status        Status
	paymentMethod PaymentMethod
	paymentStatus PaymentStatus

	createdAt   time.Time
	acceptedAt  *time.Time
	completedAt *time.Time
	cancelledAt *time.Time
	paidAt      *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status with payment pending.
// This is the only way to create a fresh order, ensuring all business
// invariants are maintained.
//
// Distance (km) and the delivery estimate (minutes) are computed here from
// origin and destination.
//
// Example:
//
//	order, err := NewOrder(
//	    kernel.NewUUID(), clientID, "Maria Lopez",
//	    origin, destination, "Av. San Martin 120", "Calle 9 n. 454",
//	    "2 boxes, ring the bell", 1500, Cash, time.Now().UTC(),
//	)
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	clientName string,
	origin kernel.GeoPoint,
	destination kernel.GeoPoint,
	originLabel string,
	destinationLabel string,
	description string,
	price float64,
	paymentMethod PaymentMethod,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		description:   description,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setClient(clientID, clientName),
		order.setRoute(origin, destination, originLabel, destinationLabel),
		order.setPrice(price),
		order.setPaymentMethod(paymentMethod),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	distanceKm, err := origin.DistanceKm(destination)
	if err != nil {
		return nil, err
	}
	order.distanceKm = distanceKm
	order.etaMinutes = kernel.EstimatedMinutes(distanceKm)

	return order, nil
}

// RestoreOrderParams carries the full persisted state of an order for
// rehydration. All lifecycle fields are restored verbatim; RestoreOrder only
// validates their mutual consistency.
type RestoreOrderParams struct {
	ID               kernel.UUID
	ClientID         kernel.UUID
	ClientName       string
	CourierID        *kernel.UUID
	CourierName      string
	Origin           kernel.GeoPoint
	Destination      kernel.GeoPoint
	OriginLabel      string
	DestinationLabel string
	Description      string
	Price            float64
	DistanceKm       float64
	EtaMinutes       int
	Status           Status
	PaymentMethod    PaymentMethod
	PaymentStatus    PaymentStatus
	CreatedAt        time.Time
	AcceptedAt       *time.Time
	CompletedAt      *time.Time
	CancelledAt      *time.Time
	PaidAt           *time.Time
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, which always starts a Pending unsettled order, this
// constructor restores the order to its previously persisted state. The
// restored order behaves identically to one driven through normal domain
// operations.
//
// Business rules enforced on restore:
//   - Status and payment fields must be valid enum values
//   - A courier is present exactly on in-transit and completed orders
//   - PaymentPaid requires Completed status
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	order := &Order{
		description: params.Description,
		distanceKm:  params.DistanceKm,
		etaMinutes:  params.EtaMinutes,
		acceptedAt:  params.AcceptedAt,
		completedAt: params.CompletedAt,
		cancelledAt: params.CancelledAt,
		paidAt:      params.PaidAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(params.ID),
		order.setClient(params.ClientID, params.ClientName),
		order.setRoute(params.Origin, params.Destination, params.OriginLabel, params.DestinationLabel),
		order.setPrice(params.Price),
		order.setPaymentMethod(params.PaymentMethod),
		order.setCreatedAt(params.CreatedAt),
		order.setStatus(params.Status),
		order.setPaymentStatus(params.PaymentStatus),
	); err != nil {
		return nil, err
	}

	if err := order.status.ValidateCanHaveCourier(params.CourierID != nil); err != nil {
		return nil, err
	}
	if params.CourierID != nil {
		if err := order.setCourier(*params.CourierID, params.CourierName); err != nil {
			return nil, err
		}
	}

	if order.paymentStatus == PaymentPaid && order.status != Completed {
		return nil, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("order in status %s cannot be paid", order.status.String()))
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}

	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the identifier of the client who placed the order.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// ClientName returns the display name of the client who placed the order.
func (o *Order) ClientName() string {
	return o.clientName
}

// CourierID returns the assigned courier's ID, or nil while the order is
// pending or cancelled.
func (o *Order) CourierID() *kernel.UUID {
	return o.courierID
}

// CourierName returns the assigned courier's display name, or "" while the
// order has no courier.
func (o *Order) CourierName() string {
	return o.courierName
}

// Origin returns the pickup coordinates.
func (o *Order) Origin() kernel.GeoPoint {
	return o.origin
}

// Destination returns the drop-off coordinates.
func (o *Order) Destination() kernel.GeoPoint {
	return o.destination
}

// OriginLabel returns the human-readable pickup address.
func (o *Order) OriginLabel() string {
	return o.originLabel
}

// DestinationLabel returns the human-readable drop-off address.
func (o *Order) DestinationLabel() string {
	return o.destinationLabel
}

// Description returns the free-form note attached by the client. May be empty.
func (o *Order) Description() string {
	return o.description
}

// Price returns the amount the client pays for the delivery.
func (o *Order) Price() float64 {
	return o.price
}

// DistanceKm returns the great-circle route length computed at creation.
func (o *Order) DistanceKm() float64 {
	return o.distanceKm
}

// EtaMinutes returns the delivery estimate computed at creation.
func (o *Order) EtaMinutes() int {
	return o.etaMinutes
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns how the client pays for the order.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns whether the order has been settled.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AcceptedAt returns when a courier accepted the order, or nil.
func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

// CompletedAt returns when the order was delivered, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// CancelledAt returns when the order was cancelled, or nil.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// PaidAt returns when the order was settled, or nil.
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// ResolvedAt returns the moment the order reached a terminal state, falling
// back to the creation time for live orders. History listings sort on it.
func (o *Order) ResolvedAt() time.Time {
	switch {
	case o.completedAt != nil:
		return *o.completedAt
	case o.cancelledAt != nil:
		return *o.cancelledAt
	default:
		return o.createdAt
	}
}

// Accept assigns the order to a courier and moves it to InTransit.
//
// Business rules:
//   - The courier ID must be valid and the name non-empty
//   - The order must be Pending
//   - The order must not already have a courier; a second acceptance fails
//     with ObjectAlreadyTakenError so callers can surface the conflict
//
// On success the courier is recorded and acceptedAt is set to the given time.
func (o *Order) Accept(courierID kernel.UUID, courierName string, at time.Time) error {
	if o.courierID != nil {
		return errs.NewObjectAlreadyTakenError("order", o.id)
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	if err := o.setCourier(courierID, courierName); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("acceptedAt")
	}

	o.status = newStatus
	o.acceptedAt = &at
	return nil
}

// Complete marks the order as delivered.
//
// Business rules:
//   - The order must be InTransit
//   - Cash orders settle immediately: payment flips to PaymentPaid and paidAt
//     is recorded alongside completedAt
//   - Card orders stay PaymentPending until ConfirmPayment runs
func (o *Order) Complete(at time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("completedAt")
	}

	o.status = newStatus
	o.completedAt = &at

	if o.paymentMethod == Cash {
		o.paymentStatus = PaymentPaid
		o.paidAt = &at
	}

	return nil
}

// Cancel withdraws a pending order.
//
// Business rules:
//   - Only Pending orders can be cancelled; once a courier is on the way the
//     only exit is Complete
func (o *Order) Cancel(at time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("cancelledAt")
	}

	o.status = newStatus
	o.cancelledAt = &at
	return nil
}

// MarkPaid settles the order after an electronic payment succeeded.
//
// Business rules:
//   - The order must be Completed
//   - The order must not already be settled
func (o *Order) MarkPaid(at time.Time) error {
	if o.status != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to mark paid", o.status.String()),
		)
	}
	if o.paymentStatus == PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("order is already paid"),
		)
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("paidAt")
	}

	o.paymentStatus = PaymentPaid
	o.paidAt = &at
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClient(clientID kernel.UUID, clientName string) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	if clientName == "" {
		return errs.NewValueIsRequiredError("clientName")
	}
	o.clientID = clientID
	o.clientName = clientName
	return nil
}

func (o *Order) setCourier(courierID kernel.UUID, courierName string) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if courierName == "" {
		return errs.NewValueIsRequiredError("courierName")
	}
	o.courierID = &courierID
	o.courierName = courierName
	return nil
}

func (o *Order) setRoute(origin, destination kernel.GeoPoint, originLabel, destinationLabel string) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	if originLabel == "" {
		return errs.NewValueIsRequiredError("originLabel")
	}
	if destinationLabel == "" {
		return errs.NewValueIsRequiredError("destinationLabel")
	}
	o.origin = origin
	o.destination = destination
	o.originLabel = originLabel
	o.destinationLabel = destinationLabel
	return nil
}

func (o *Order) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is not greater than 0", price))
	}
	o.price = price
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

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
