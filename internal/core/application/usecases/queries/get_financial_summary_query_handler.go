package queries

import (
	"context"

	"deliverya/internal/core/domain/model/order"
	"deliverya/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetFinancialSummaryQueryHandler computes a participant's totals. It fetches
// only the completed orders the user took part in and hands the arithmetic to
// the domain service.
type GetFinancialSummaryQueryHandler struct {
	db    *gorm.DB
	views services.OrderViews
}

// NewGetFinancialSummaryQueryHandler creates a handler for summary queries.
// Requires a GORM database connection for query execution.
func NewGetFinancialSummaryQueryHandler(db *gorm.DB) GetFinancialSummaryQueryHandler {
	return GetFinancialSummaryQueryHandler{
		db:    db,
		views: services.NewOrderViews(),
	}
}

// Handle executes the summary query for one participant.
func (h GetFinancialSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetFinancialSummaryQuery,
) (FinancialSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return FinancialSummaryResponse{}, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ? AND (client_id = ? OR courier_id = ?)
	`, order.Completed, query.UserID().Value(), query.UserID().Value()).Scan(&rows).Error
	if err != nil {
		return FinancialSummaryResponse{}, err
	}

	orders, err := rowsToDomain(rows)
	if err != nil {
		return FinancialSummaryResponse{}, err
	}

	summary := h.views.Summarize(orders, query.UserID(), query.Role())
	return toSummaryResponse(summary), nil
}
