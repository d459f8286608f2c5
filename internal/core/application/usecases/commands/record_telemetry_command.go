package commands

import (
	"errors"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/pkg/guard"
)

var ErrRecordTelemetryCommandIsNotConstructed = errors.New(
	"RecordTelemetryCommand must be created via NewRecordTelemetryCommand constructor",
)

// RecordTelemetryCommand represents a real GPS sample posted by the courier
// device during a delivery.
type RecordTelemetryCommand struct { //nolint:recvcheck //using for validation
	pointID  kernel.UUID
	orderID  kernel.UUID
	position kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRecordTelemetryCommand creates a command to record a position sample.
// Coordinates are validated through GeoPoint construction.
func NewRecordTelemetryCommand(
	pointID kernel.UUID,
	orderID kernel.UUID,
	lat float64,
	lng float64,
) (RecordTelemetryCommand, error) {
	position, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return RecordTelemetryCommand{}, err
	}

	cmd := RecordTelemetryCommand{
		position: position,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPointID(pointID),
		cmd.setOrderID(orderID),
	); err != nil {
		return RecordTelemetryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordTelemetryCommand) Validate() error {
	return c.guard.Validate(ErrRecordTelemetryCommandIsNotConstructed)
}

// PointID returns the identifier of the new sample.
func (c RecordTelemetryCommand) PointID() kernel.UUID {
	return c.pointID
}

// OrderID returns the order being tracked.
func (c RecordTelemetryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Position returns the sampled coordinates.
func (c RecordTelemetryCommand) Position() kernel.GeoPoint {
	return c.position
}

func (c *RecordTelemetryCommand) setPointID(pointID kernel.UUID) error {
	if err := pointID.Validate(); err != nil {
		return err
	}

	c.pointID = pointID
	return nil
}

func (c *RecordTelemetryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
