package tracking

import (
	"errors"
	"time"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/pkg/errs"
	"deliverya/internal/pkg/guard"
)

// ErrPointIsNotConstructed is returned when a Point instance was not created
// through the NewPoint or RestorePoint constructors.
var ErrPointIsNotConstructed = errors.New("Point must be created via NewPoint constructor")

// Point is one recorded courier position for an order. Points come from two
// sources with the same shape: the courier device posting real GPS samples,
// and the acceptance flow seeding the first sample at the pickup point.
type Point struct {
	id         kernel.UUID
	orderID    kernel.UUID
	position   kernel.GeoPoint
	recordedAt time.Time

	guard guard.ConstructorGuard
}

// NewPoint records a courier position for an order.
func NewPoint(
	id kernel.UUID,
	orderID kernel.UUID,
	position kernel.GeoPoint,
	recordedAt time.Time,
) (*Point, error) {
	p := &Point{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setPosition(position),
		p.setRecordedAt(recordedAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePoint reconstructs a Point from persistent storage.
func RestorePoint(
	id kernel.UUID,
	orderID kernel.UUID,
	position kernel.GeoPoint,
	recordedAt time.Time,
) (*Point, error) {
	return NewPoint(id, orderID, position, recordedAt)
}

// Validate ensures the Point instance was properly constructed.
func (p *Point) Validate() error {
	if p == nil {
		return ErrPointIsNotConstructed
	}

	return p.guard.Validate(ErrPointIsNotConstructed)
}

// ID returns the point's unique identifier.
func (p *Point) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order the sample belongs to.
func (p *Point) OrderID() kernel.UUID {
	return p.orderID
}

// Position returns the recorded coordinates.
func (p *Point) Position() kernel.GeoPoint {
	return p.position
}

// RecordedAt returns when the sample was taken.
func (p *Point) RecordedAt() time.Time {
	return p.recordedAt
}

func (p *Point) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Point) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	p.orderID = orderID
	return nil
}

func (p *Point) setPosition(position kernel.GeoPoint) error {
	if err := position.Validate(); err != nil {
		return err
	}
	p.position = position
	return nil
}

func (p *Point) setRecordedAt(recordedAt time.Time) error {
	if recordedAt.IsZero() {
		return errs.NewValueIsRequiredError("recordedAt")
	}
	p.recordedAt = recordedAt
	return nil
}
