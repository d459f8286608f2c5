package ports

import (
	"context"

	"deliverya/internal/core/domain/model/order"
)

// OrderEventPublisher pushes the full updated order to the message broker on
// every lifecycle change, so other processes can follow the order stream
// without polling the database.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
