package queries

import (
	"errors"
	"time"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/pkg/guard"
)

var ErrGetMessagesQueryIsNotConstructed = errors.New(
	"GetMessagesQuery must be created via NewGetMessagesQuery constructor",
)

// GetMessagesQuery retrieves the chat thread of one order for a participant.
type GetMessagesQuery struct { //nolint:recvcheck //using for validation
	requesterID kernel.UUID
	orderID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMessagesQuery creates a query for an order's chat thread.
func NewGetMessagesQuery(requesterID kernel.UUID, orderID kernel.UUID) (GetMessagesQuery, error) {
	query := GetMessagesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setRequesterID(requesterID),
		query.setOrderID(orderID),
	); err != nil {
		return GetMessagesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMessagesQuery) Validate() error {
	return q.guard.Validate(ErrGetMessagesQueryIsNotConstructed)
}

// RequesterID returns the user asking for the thread.
func (q GetMessagesQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

// OrderID returns the order whose thread is requested.
func (q GetMessagesQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetMessagesQuery) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	q.requesterID = requesterID
	return nil
}

func (q *GetMessagesQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// MessageResponse is the transport-facing projection of one chat message.
type MessageResponse struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	SenderID   kernel.UUID
	SenderName string
	Body       string
	SentAt     time.Time
}
