package queries

import (
	"errors"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/user"
	"deliverya/internal/core/domain/services"
	"deliverya/internal/pkg/guard"
)

var ErrGetOrderBoardQueryIsNotConstructed = errors.New(
	"GetOrderBoardQuery must be created via NewGetOrderBoardQuery constructor",
)

// GetOrderBoardQuery retrieves the full per-viewer projection of the order
// set: available work, the viewer's live orders, their history and their
// financial summary, partitioned by role.
//
// Example:
//
//	query, _ := NewGetOrderBoardQuery(viewerID, user.Courier)
//	handler := NewGetOrderBoardQueryHandler(db)
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load board: %w", err)
//	}
//	fmt.Printf("%d orders up for grabs\n", len(board.Available))
type GetOrderBoardQuery struct { //nolint:recvcheck //using for validation
	viewerID kernel.UUID
	role     user.Role

	guard guard.ConstructorGuard
}

// NewGetOrderBoardQuery creates a query for a viewer's order board.
func NewGetOrderBoardQuery(viewerID kernel.UUID, role user.Role) (GetOrderBoardQuery, error) {
	query := GetOrderBoardQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setViewerID(viewerID),
		query.setRole(role),
	); err != nil {
		return GetOrderBoardQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBoardQueryIsNotConstructed)
}

// ViewerID returns the user the board is built for.
func (q GetOrderBoardQuery) ViewerID() kernel.UUID {
	return q.viewerID
}

// Role returns the viewer's side of the marketplace.
func (q GetOrderBoardQuery) Role() user.Role {
	return q.role
}

func (q *GetOrderBoardQuery) setViewerID(viewerID kernel.UUID) error {
	if err := viewerID.Validate(); err != nil {
		return err
	}

	q.viewerID = viewerID
	return nil
}

func (q *GetOrderBoardQuery) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	q.role = role
	return nil
}

// GetOrderBoardQueryResponse carries the partitioned board plus the summary.
type GetOrderBoardQueryResponse struct {
	Available []OrderResponse
	Active    []OrderResponse
	History   []OrderResponse
	Summary   FinancialSummaryResponse
}

// FinancialSummaryResponse mirrors services.FinancialSummary for transport.
type FinancialSummaryResponse struct {
	TotalSpent          float64
	OrdersCompleted     int
	TotalEarned         float64
	DeliveriesCompleted int
	TotalDistanceKm     float64
}

func toSummaryResponse(s services.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		TotalSpent:          s.TotalSpent,
		OrdersCompleted:     s.OrdersCompleted,
		TotalEarned:         s.TotalEarned,
		DeliveriesCompleted: s.DeliveriesCompleted,
		TotalDistanceKm:     s.TotalDistanceKm,
	}
}
