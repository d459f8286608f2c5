package queries

import (
	"errors"
	"time"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/pkg/guard"
)

var ErrGetTrackingQueryIsNotConstructed = errors.New(
	"GetTrackingQuery must be created via NewGetTrackingQuery constructor",
)

// GetTrackingQuery retrieves the current courier position for one order.
type GetTrackingQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTrackingQuery creates a query for an order's live position.
func NewGetTrackingQuery(orderID kernel.UUID) (GetTrackingQuery, error) {
	query := GetTrackingQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetTrackingQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingQueryIsNotConstructed)
}

// OrderID returns the order being tracked.
func (q GetTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetTrackingQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// Position sources, from most to least trustworthy.
const (
	// PositionSourceTelemetry marks a position reported by the courier device.
	PositionSourceTelemetry = "telemetry"
	// PositionSourceSimulated marks a position produced by the movement
	// simulation between device reports.
	PositionSourceSimulated = "simulated"
	// PositionSourceOrigin marks the pickup point, used before any movement
	// is known.
	PositionSourceOrigin = "origin"
)

// GetTrackingQueryResponse carries the order's current position, where the
// position came from, and the route context a map view needs.
type GetTrackingQueryResponse struct {
	OrderID        kernel.UUID
	Lat            float64
	Lng            float64
	Source         string
	RecordedAt     *time.Time
	DestinationLat float64
	DestinationLng float64
	EtaMinutes     int
	Status         string
}
