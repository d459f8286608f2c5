package commands

import (
	"errors"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a courier's claim on a pending order,
// carrying the courier's current position for the first tracking sample.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	position  kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a courier to accept an order.
// Coordinates are validated through GeoPoint construction.
func NewAcceptOrderCommand(orderID, courierID kernel.UUID, lat, lng float64) (AcceptOrderCommand, error) {
	position, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return AcceptOrderCommand{}, err
	}

	cmd := AcceptOrderCommand{
		position: position,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the order being claimed.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the courier claiming the order.
func (c AcceptOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Position returns where the courier was when they claimed the order.
func (c AcceptOrderCommand) Position() kernel.GeoPoint {
	return c.position
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
