package message

import (
	"errors"
	"time"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/pkg/errs"
	"deliverya/internal/pkg/guard"
)

// ErrMessageIsNotConstructed is returned when a Message instance was not
// created through the NewMessage or RestoreMessage constructors.
var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")

// Message is one chat line between the two parties of an order. Messages are
// append-only; once sent they are never edited or removed, so the entity has
// no mutating behavior.
type Message struct {
	id         kernel.UUID
	orderID    kernel.UUID
	senderID   kernel.UUID
	senderName string
	body       string
	sentAt     time.Time

	guard guard.ConstructorGuard
}

// NewMessage creates a chat message bound to an order. Whether the sender is
// actually a party to the order is checked by the sending use case, which has
// the order at hand.
func NewMessage(
	id kernel.UUID,
	orderID kernel.UUID,
	senderID kernel.UUID,
	senderName string,
	body string,
	sentAt time.Time,
) (*Message, error) {
	m := &Message{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setOrderID(orderID),
		m.setSender(senderID, senderName),
		m.setBody(body),
		m.setSentAt(sentAt),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMessage reconstructs a Message from persistent storage.
func RestoreMessage(
	id kernel.UUID,
	orderID kernel.UUID,
	senderID kernel.UUID,
	senderName string,
	body string,
	sentAt time.Time,
) (*Message, error) {
	return NewMessage(id, orderID, senderID, senderName, body, sentAt)
}

// Validate ensures the Message instance was properly constructed.
func (m *Message) Validate() error {
	if m == nil {
		return ErrMessageIsNotConstructed
	}

	return m.guard.Validate(ErrMessageIsNotConstructed)
}

// IsEqual compares two messages by their unique identifiers.
func (m *Message) IsEqual(other *Message) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the message's unique identifier.
func (m *Message) ID() kernel.UUID {
	return m.id
}

// OrderID returns the order this message belongs to.
func (m *Message) OrderID() kernel.UUID {
	return m.orderID
}

// SenderID returns the user who sent the message.
func (m *Message) SenderID() kernel.UUID {
	return m.senderID
}

// SenderName returns the display name of the sender.
func (m *Message) SenderName() string {
	return m.senderName
}

// Body returns the message text.
func (m *Message) Body() string {
	return m.body
}

// SentAt returns when the message was sent.
func (m *Message) SentAt() time.Time {
	return m.sentAt
}

func (m *Message) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Message) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	m.orderID = orderID
	return nil
}

func (m *Message) setSender(senderID kernel.UUID, senderName string) error {
	if err := senderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("senderID", err)
	}
	if senderName == "" {
		return errs.NewValueIsRequiredError("senderName")
	}
	m.senderID = senderID
	m.senderName = senderName
	return nil
}

func (m *Message) setBody(body string) error {
	if body == "" {
		return errs.NewValueIsRequiredError("body")
	}
	m.body = body
	return nil
}

func (m *Message) setSentAt(sentAt time.Time) error {
	if sentAt.IsZero() {
		return errs.NewValueIsRequiredError("sentAt")
	}
	m.sentAt = sentAt
	return nil
}
