package commands

import (
	"errors"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/pkg/guard"
)

var (
	ErrSendMessageCommandIsNotConstructed = errors.New(
		"SendMessageCommand must be created via NewSendMessageCommand constructor",
	)
	ErrMessageBodyIsRequired = errors.New("message body is required")
)

// SendMessageCommand represents one party of an order sending a chat line to
// the other.
type SendMessageCommand struct { //nolint:recvcheck //using for validation
	messageID kernel.UUID
	orderID   kernel.UUID
	senderID  kernel.UUID
	body      string

	guard guard.ConstructorGuard
}

// NewSendMessageCommand creates a command to append a chat message.
func NewSendMessageCommand(
	messageID kernel.UUID,
	orderID kernel.UUID,
	senderID kernel.UUID,
	body string,
) (SendMessageCommand, error) {
	cmd := SendMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMessageID(messageID),
		cmd.setOrderID(orderID),
		cmd.setSenderID(senderID),
		cmd.setBody(body),
	); err != nil {
		return SendMessageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendMessageCommand) Validate() error {
	return c.guard.Validate(ErrSendMessageCommandIsNotConstructed)
}

// MessageID returns the identifier of the new message.
func (c SendMessageCommand) MessageID() kernel.UUID {
	return c.messageID
}

// OrderID returns the order the message belongs to.
func (c SendMessageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SenderID returns the user sending the message.
func (c SendMessageCommand) SenderID() kernel.UUID {
	return c.senderID
}

// Body returns the message text.
func (c SendMessageCommand) Body() string {
	return c.body
}

func (c *SendMessageCommand) setMessageID(messageID kernel.UUID) error {
	if err := messageID.Validate(); err != nil {
		return err
	}

	c.messageID = messageID
	return nil
}

func (c *SendMessageCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SendMessageCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}

	c.senderID = senderID
	return nil
}

func (c *SendMessageCommand) setBody(body string) error {
	if body == "" {
		return ErrMessageBodyIsRequired
	}

	c.body = body
	return nil
}
