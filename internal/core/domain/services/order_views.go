package services

import (
	"sort"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/order"
	"deliverya/internal/core/domain/model/user"
)

// OrderViews is a domain service deriving role-specific projections from a
// set of orders. Every view is a pure function of the orders passed in; the
// service holds no state and never touches storage.
//
// The projections mirror what the two sides of the marketplace see:
//   - Couriers browse Available work and track their Active delivery
//   - Clients track their own live orders
//   - Both see a History of their finished orders and a financial summary
type OrderViews struct{}

// NewOrderViews creates a new OrderViews instance.
func NewOrderViews() OrderViews {
	return OrderViews{}
}

// FinancialSummary aggregates the money and distance a participant moved
// through completed orders. Client fields and courier fields are disjoint;
// the ones not matching the viewer's role stay zero.
type FinancialSummary struct {
	// TotalSpent is the sum a client paid across their completed orders.
	TotalSpent float64
	// OrdersCompleted counts a client's completed orders.
	OrdersCompleted int

	// TotalEarned is the sum a courier collected across completed deliveries.
	TotalEarned float64
	// DeliveriesCompleted counts a courier's completed deliveries.
	DeliveriesCompleted int
	// TotalDistanceKm is the route length a courier covered on completed
	// deliveries.
	TotalDistanceKm float64
}

// Board is the full per-viewer projection: what the viewer can act on now,
// what they are involved in, what they already finished, and their totals.
type Board struct {
	Available []*order.Order
	Active    []*order.Order
	History   []*order.Order
	Summary   FinancialSummary
}

// Available returns the orders open for any courier to accept, i.e. all
// pending orders. Cancelled and taken orders never show up here.
func (OrderViews) Available(orders []*order.Order) []*order.Order {
	result := make([]*order.Order, 0)
	for _, o := range orders {
		if o.Status() == order.Pending {
			result = append(result, o)
		}
	}
	return result
}

// ActiveForClient returns the client's live orders: placed by them and either
// still waiting for a courier or on the way.
func (OrderViews) ActiveForClient(orders []*order.Order, clientID kernel.UUID) []*order.Order {
	result := make([]*order.Order, 0)
	for _, o := range orders {
		if !o.ClientID().IsEqual(clientID) {
			continue
		}
		if o.Status() == order.Pending || o.Status() == order.InTransit {
			result = append(result, o)
		}
	}
	return result
}

// ActiveForCourier returns the delivery the courier is currently on. The
// accept race guarantees at most one in-transit order per courier in
// practice, but the view does not rely on that.
func (OrderViews) ActiveForCourier(orders []*order.Order, courierID kernel.UUID) []*order.Order {
	result := make([]*order.Order, 0)
	for _, o := range orders {
		if o.Status() != order.InTransit {
			continue
		}
		if o.CourierID() != nil && o.CourierID().IsEqual(courierID) {
			result = append(result, o)
		}
	}
	return result
}

// History returns the finished orders the viewer took part in, on either
// side, newest first. Orders are sorted by the moment they reached their
// terminal state; the stable sort keeps the storage order for ties.
func (OrderViews) History(orders []*order.Order, viewerID kernel.UUID) []*order.Order {
	result := make([]*order.Order, 0)
	for _, o := range orders {
		if !o.Status().IsTerminal() {
			continue
		}
		if isParticipant(o, viewerID) {
			result = append(result, o)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ResolvedAt().After(result[j].ResolvedAt())
	})

	return result
}

// Summarize computes the viewer's financial summary. Only completed orders
// count; cancelled orders contribute nothing on either side.
func (OrderViews) Summarize(orders []*order.Order, viewerID kernel.UUID, role user.Role) FinancialSummary {
	var summary FinancialSummary

	for _, o := range orders {
		if o.Status() != order.Completed {
			continue
		}

		switch role {
		case user.Client:
			if o.ClientID().IsEqual(viewerID) {
				summary.TotalSpent += o.Price()
				summary.OrdersCompleted++
			}
		case user.Courier:
			if o.CourierID() != nil && o.CourierID().IsEqual(viewerID) {
				summary.TotalEarned += o.Price()
				summary.DeliveriesCompleted++
				summary.TotalDistanceKm += o.DistanceKm()
			}
		}
	}

	return summary
}

// BoardFor assembles the complete projection for a viewer. Clients get their
// live orders as Active and no Available section; couriers get the open
// market as Available and their current delivery as Active.
func (v OrderViews) BoardFor(orders []*order.Order, viewerID kernel.UUID, role user.Role) (Board, error) {
	if err := viewerID.Validate(); err != nil {
		return Board{}, err
	}
	if err := role.Validate(); err != nil {
		return Board{}, err
	}

	board := Board{
		History: v.History(orders, viewerID),
		Summary: v.Summarize(orders, viewerID, role),
	}

	switch role {
	case user.Client:
		board.Available = make([]*order.Order, 0)
		board.Active = v.ActiveForClient(orders, viewerID)
	case user.Courier:
		board.Available = v.Available(orders)
		board.Active = v.ActiveForCourier(orders, viewerID)
	}

	return board, nil
}

func isParticipant(o *order.Order, viewerID kernel.UUID) bool {
	if o.ClientID().IsEqual(viewerID) {
		return true
	}
	return o.CourierID() != nil && o.CourierID().IsEqual(viewerID)
}
