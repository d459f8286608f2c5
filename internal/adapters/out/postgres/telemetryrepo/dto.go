// Package telemetryrepo persists courier position samples with GORM.
package telemetryrepo

import (
	"time"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// PointDTO is the database row behind one position sample.
type PointDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Lat        float64
	Lng        float64
	RecordedAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "tracking_points".
func (PointDTO) TableName() string {
	return "tracking_points"
}

func fromDomain(aggregate *tracking.Point) PointDTO {
	return PointDTO{
		ID:         aggregate.ID().Value(),
		OrderID:    aggregate.OrderID().Value(),
		Lat:        aggregate.Position().Lat(),
		Lng:        aggregate.Position().Lng(),
		RecordedAt: aggregate.RecordedAt(),
	}
}

func toDomain(dto PointDTO) (*tracking.Point, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	position, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}

	return tracking.RestorePoint(id, orderID, position, dto.RecordedAt)
}
