package messagerepo

import (
	"context"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/message"

	"gorm.io/gorm"
)

// GormMessageRepository implements MessageRepository using GORM.
type GormMessageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMessageRepository creates a new GORM message repository.
func NewGormMessageRepository(db *gorm.DB, tracker aggregateTracker) *GormMessageRepository {
	return &GormMessageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new message to the database.
func (r *GormMessageRepository) Add(ctx context.Context, aggregate *message.Message) error {
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

// GetByOrder retrieves the full conversation of an order, oldest first.
func (r *GormMessageRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*message.Message, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MessageDTO
	if err := r.db.WithContext(ctx).Order("sent_at, id").
		Find(&dtos, "order_id = ?", orderID.Value()).Error; err != nil {
		return nil, err
	}

	messages := make([]*message.Message, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, nil
}
