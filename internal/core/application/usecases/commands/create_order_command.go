package commands

import (
	"errors"
	"fmt"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/order"
	"deliverya/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAddressIsRequired = errors.New("address is required")
)

// CreateOrderCommand represents a request to place a new delivery order.
// Addresses arrive as free text; the handler geocodes them before the order
// aggregate is built.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), clientID,
//	    "Av. San Martin 120", "Calle 9 n. 454", "two boxes", 1500, order.Cash)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, geocoder, regionHint, publisher, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	clientID           kernel.UUID
	originAddress      string
	destinationAddress string
	description        string
	price              float64
	paymentMethod      order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new delivery order.
// Validates identifiers, both addresses, a positive price and the payment
// method. Description is optional.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	originAddress string,
	destinationAddress string,
	description string,
	price float64,
	paymentMethod order.PaymentMethod,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setAddresses(originAddress, destinationAddress),
		cmd.setPrice(price),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the client placing the order.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// OriginAddress returns the free-text pickup address.
func (c CreateOrderCommand) OriginAddress() string {
	return c.originAddress
}

// DestinationAddress returns the free-text drop-off address.
func (c CreateOrderCommand) DestinationAddress() string {
	return c.destinationAddress
}

// Description returns the client's free-form note. May be empty.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// Price returns the amount the client pays for the delivery.
func (c CreateOrderCommand) Price() float64 {
	return c.price
}

// PaymentMethod returns how the client pays.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setAddresses(origin, destination string) error {
	if origin == "" || destination == "" {
		return ErrAddressIsRequired
	}

	c.originAddress = origin
	c.destinationAddress = destination
	return nil
}

func (c *CreateOrderCommand) setPrice(price float64) error {
	if price <= 0 {
		return fmt.Errorf("price must be greater than 0, got %f", price)
	}

	c.price = price
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}
