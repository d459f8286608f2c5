package queries

import (
	"context"

	"deliverya/internal/core/domain/model/order"
	"deliverya/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetOrderBoardQueryHandler builds the per-viewer board projection. One raw
// query fetches every row the projection can need (the open market plus
// everything the viewer took part in); partitioning happens in the domain
// service so the rules live in exactly one place.
type GetOrderBoardQueryHandler struct {
	db    *gorm.DB
	views services.OrderViews
}

// NewGetOrderBoardQueryHandler creates a handler for board queries.
// Requires a GORM database connection for query execution.
func NewGetOrderBoardQueryHandler(db *gorm.DB) GetOrderBoardQueryHandler {
	return GetOrderBoardQueryHandler{
		db:    db,
		views: services.NewOrderViews(),
	}
}

// Handle executes the board query for one viewer.
func (h GetOrderBoardQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBoardQuery,
) (GetOrderBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderBoardQueryResponse{}, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ? OR client_id = ? OR courier_id = ?
		ORDER BY created_at
	`, order.Pending, query.ViewerID().Value(), query.ViewerID().Value()).Scan(&rows).Error
	if err != nil {
		return GetOrderBoardQueryResponse{}, err
	}

	orders, err := rowsToDomain(rows)
	if err != nil {
		return GetOrderBoardQueryResponse{}, err
	}

	board, err := h.views.BoardFor(orders, query.ViewerID(), query.Role())
	if err != nil {
		return GetOrderBoardQueryResponse{}, err
	}

	return GetOrderBoardQueryResponse{
		Available: toOrderResponses(board.Available),
		Active:    toOrderResponses(board.Active),
		History:   toOrderResponses(board.History),
		Summary:   toSummaryResponse(board.Summary),
	}, nil
}
