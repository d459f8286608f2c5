package telemetryrepo

import (
	"context"
	"errors"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/tracking"
	"deliverya/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTelemetryRepository implements TelemetryRepository using GORM.
type GormTelemetryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTelemetryRepository creates a new GORM telemetry repository.
func NewGormTelemetryRepository(db *gorm.DB, tracker aggregateTracker) *GormTelemetryRepository {
	return &GormTelemetryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new position sample to the database.
func (r *GormTelemetryRepository) Add(ctx context.Context, aggregate *tracking.Point) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetLatest retrieves the freshest sample for an order. Returns
// ObjectNotFoundError when no sample was ever recorded.
func (r *GormTelemetryRepository) GetLatest(ctx context.Context, orderID kernel.UUID) (*tracking.Point, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PointDTO
	err := r.db.WithContext(ctx).Order("recorded_at DESC").
		First(&dto, "order_id = ?", orderID.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking point", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
