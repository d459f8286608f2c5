package queries

import (
	"context"
	"fmt"
	"time"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type messageRow struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	SenderID   uuid.UUID
	SenderName string
	Body       string
	SentAt     time.Time
}

type orderPartyRow struct {
	ClientID  uuid.UUID
	CourierID *uuid.UUID
}

// GetMessagesQueryHandler returns an order's chat thread, oldest first.
// Only the order's client and its courier may read the thread.
type GetMessagesQueryHandler struct {
	db *gorm.DB
}

// NewGetMessagesQueryHandler creates a handler for chat-thread queries.
// Requires a GORM database connection for query execution.
func NewGetMessagesQueryHandler(db *gorm.DB) GetMessagesQueryHandler {
	return GetMessagesQueryHandler{db: db}
}

// Handle executes the query and returns the thread in send order.
func (h GetMessagesQueryHandler) Handle(
	ctx context.Context,
	query GetMessagesQuery,
) ([]MessageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var parties []orderPartyRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT client_id, courier_id
		FROM orders
		WHERE id = ?
	`, query.OrderID().Value()).Scan(&parties).Error
	if err != nil {
		return nil, err
	}
	if len(parties) == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	if !isPartyOf(parties[0], query.RequesterID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("requesterID",
			fmt.Errorf("user %s is not a participant of order %s", query.RequesterID(), query.OrderID()))
	}

	var rows []messageRow
	err = h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, sender_id, sender_name, body, sent_at
		FROM messages
		WHERE order_id = ?
		ORDER BY sent_at, id
	`, query.OrderID().Value()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	responses := make([]MessageResponse, 0, len(rows))
	for _, row := range rows {
		response, rowErr := row.toResponse()
		if rowErr != nil {
			return nil, rowErr
		}
		responses = append(responses, response)
	}
	return responses, nil
}

func (r messageRow) toResponse() (MessageResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return MessageResponse{}, err
	}
	orderID, err := kernel.UUIDFromBytes(r.OrderID[:])
	if err != nil {
		return MessageResponse{}, err
	}
	senderID, err := kernel.UUIDFromBytes(r.SenderID[:])
	if err != nil {
		return MessageResponse{}, err
	}

	return MessageResponse{
		ID:         id,
		OrderID:    orderID,
		SenderID:   senderID,
		SenderName: r.SenderName,
		Body:       r.Body,
		SentAt:     r.SentAt,
	}, nil
}

func isPartyOf(parties orderPartyRow, requesterID kernel.UUID) bool {
	if parties.ClientID == requesterID.Value() {
		return true
	}
	return parties.CourierID != nil && *parties.CourierID == requesterID.Value()
}
