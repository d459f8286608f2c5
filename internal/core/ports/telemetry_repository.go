package ports

import (
	"context"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/tracking"
)

// TelemetryRepository defines the persistence contract for courier position
// samples.
type TelemetryRepository interface {
	// Add persists a new position sample.
	Add(ctx context.Context, aggregate *tracking.Point) error

	// GetLatest retrieves the freshest sample for an order. Returns
	// ObjectNotFoundError when no sample was ever recorded.
	GetLatest(ctx context.Context, orderID kernel.UUID) (*tracking.Point, error)
}
