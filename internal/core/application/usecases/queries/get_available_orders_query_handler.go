package queries

import (
	"context"

	"deliverya/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler lists the open market: pending orders any
// courier may accept, oldest first.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for available-order
// queries. Requires a GORM database connection for query execution.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle executes the query and returns all pending orders.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ?
		ORDER BY created_at
	`, order.Pending).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	orders, err := rowsToDomain(rows)
	if err != nil {
		return nil, err
	}

	return toOrderResponses(orders), nil
}
