package queries

import (
	"context"
	"time"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/pkg/errs"

	"gorm.io/gorm"
)

// TelemetryFreshness is how long a device report stays authoritative. Within
// this window the report wins over the simulation; after it the simulation
// takes over until the device speaks again.
const TelemetryFreshness = 30 * time.Second

// SimulatedPositionSource serves positions produced by the movement
// simulation between device reports.
type SimulatedPositionSource interface {
	Position(orderID kernel.UUID) (kernel.GeoPoint, bool)
}

type telemetryRow struct {
	Lat        float64
	Lng        float64
	RecordedAt time.Time
}

// GetTrackingQueryHandler resolves the current position of an order. It
// prefers a fresh device report, falls back to the simulated position, then
// to the last stale report, and finally to the pickup point.
type GetTrackingQueryHandler struct {
	db  *gorm.DB
	sim SimulatedPositionSource
	now func() time.Time
}

// NewGetTrackingQueryHandler creates a handler for tracking queries.
// Requires a GORM database connection and the simulated position source.
func NewGetTrackingQueryHandler(db *gorm.DB, sim SimulatedPositionSource) GetTrackingQueryHandler {
	return GetTrackingQueryHandler{
		db:  db,
		sim: sim,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Handle executes the tracking query for one order.
func (h GetTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingQuery,
) (GetTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTrackingQueryResponse{}, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Value()).Scan(&rows).Error
	if err != nil {
		return GetTrackingQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetTrackingQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	tracked, err := rows[0].toDomain()
	if err != nil {
		return GetTrackingQueryResponse{}, err
	}

	var samples []telemetryRow
	err = h.db.WithContext(ctx).Raw(`
		SELECT lat, lng, recorded_at
		FROM tracking_points
		WHERE order_id = ?
		ORDER BY recorded_at DESC
		LIMIT 1
	`, query.OrderID().Value()).Scan(&samples).Error
	if err != nil {
		return GetTrackingQueryResponse{}, err
	}

	response := GetTrackingQueryResponse{
		OrderID:        tracked.ID(),
		DestinationLat: tracked.Destination().Lat(),
		DestinationLng: tracked.Destination().Lng(),
		EtaMinutes:     tracked.EtaMinutes(),
		Status:         tracked.Status().String(),
	}

	if len(samples) > 0 && h.now().Sub(samples[0].RecordedAt) <= TelemetryFreshness {
		recordedAt := samples[0].RecordedAt
		response.Lat = samples[0].Lat
		response.Lng = samples[0].Lng
		response.Source = PositionSourceTelemetry
		response.RecordedAt = &recordedAt
		return response, nil
	}

	if position, ok := h.sim.Position(query.OrderID()); ok {
		response.Lat = position.Lat()
		response.Lng = position.Lng()
		response.Source = PositionSourceSimulated
		return response, nil
	}

	if len(samples) > 0 {
		recordedAt := samples[0].RecordedAt
		response.Lat = samples[0].Lat
		response.Lng = samples[0].Lng
		response.Source = PositionSourceTelemetry
		response.RecordedAt = &recordedAt
		return response, nil
	}

	response.Lat = tracked.Origin().Lat()
	response.Lng = tracked.Origin().Lng()
	response.Source = PositionSourceOrigin
	return response, nil
}
