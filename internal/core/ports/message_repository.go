package ports

import (
	"context"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/message"
)

// MessageRepository defines the persistence contract for order chat messages.
// The store is append-only; messages are never updated or removed.
type MessageRepository interface {
	// Add persists a new message.
	Add(ctx context.Context, aggregate *message.Message) error

	// GetByOrder retrieves the full conversation of an order, oldest first.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*message.Message, error)
}
