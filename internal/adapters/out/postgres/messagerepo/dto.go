// Package messagerepo persists order chat messages with GORM. The store is
// append-only; rows are never updated or removed.
package messagerepo

import (
	"time"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/message"

	"github.com/google/uuid"
)

// MessageDTO is the database row behind one chat message. The sender name is
// denormalized at write time so reading a thread never joins the users table.
type MessageDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	SenderID   uuid.UUID `gorm:"type:uuid"`
	SenderName string    `gorm:"type:varchar(255)"`
	Body       string    `gorm:"type:text"`
	SentAt     time.Time
}

// TableName overrides GORM's default naming to use "messages".
func (MessageDTO) TableName() string {
	return "messages"
}

func fromDomain(aggregate *message.Message) MessageDTO {
	return MessageDTO{
		ID:         aggregate.ID().Value(),
		OrderID:    aggregate.OrderID().Value(),
		SenderID:   aggregate.SenderID().Value(),
		SenderName: aggregate.SenderName(),
		Body:       aggregate.Body(),
		SentAt:     aggregate.SentAt(),
	}
}

func toDomain(dto MessageDTO) (*message.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	return message.RestoreMessage(id, orderID, senderID, dto.SenderName, dto.Body, dto.SentAt)
}
