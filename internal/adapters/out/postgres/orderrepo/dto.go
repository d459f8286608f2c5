// Package orderrepo persists order aggregates with GORM. It owns the mapping
// between the domain aggregate and the orders table; nothing outside this
// package sees the DTO.
package orderrepo

import (
	"time"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row behind one order aggregate. Coordinates are
// flattened into lat/lng column pairs; lifecycle timestamps are nullable and
// set as the order moves through its states.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID         uuid.UUID  `gorm:"type:uuid;index"`
	ClientName       string     `gorm:"type:varchar(255)"`
	CourierID        *uuid.UUID `gorm:"type:uuid;index"`
	CourierName      string     `gorm:"type:varchar(255)"`
	OriginLat        float64
	OriginLng        float64
	DestinationLat   float64
	DestinationLng   float64
	OriginLabel      string `gorm:"type:text"`
	DestinationLabel string `gorm:"type:text"`
	Description      string `gorm:"type:text"`
	Price            float64
	DistanceKm       float64
	EtaMinutes       int
	Status           int `gorm:"index"`
	PaymentMethod    int
	PaymentStatus    int
	CreatedAt        time.Time
	AcceptedAt       *time.Time
	CompletedAt      *time.Time
	CancelledAt      *time.Time
	PaidAt           *time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Value()
		courierID = &raw
	}

	return OrderDTO{
		ID:               aggregate.ID().Value(),
		ClientID:         aggregate.ClientID().Value(),
		ClientName:       aggregate.ClientName(),
		CourierID:        courierID,
		CourierName:      aggregate.CourierName(),
		OriginLat:        aggregate.Origin().Lat(),
		OriginLng:        aggregate.Origin().Lng(),
		DestinationLat:   aggregate.Destination().Lat(),
		DestinationLng:   aggregate.Destination().Lng(),
		OriginLabel:      aggregate.OriginLabel(),
		DestinationLabel: aggregate.DestinationLabel(),
		Description:      aggregate.Description(),
		Price:            aggregate.Price(),
		DistanceKm:       aggregate.DistanceKm(),
		EtaMinutes:       aggregate.EtaMinutes(),
		Status:           int(aggregate.Status()),
		PaymentMethod:    int(aggregate.PaymentMethod()),
		PaymentStatus:    int(aggregate.PaymentStatus()),
		CreatedAt:        aggregate.CreatedAt(),
		AcceptedAt:       aggregate.AcceptedAt(),
		CompletedAt:      aggregate.CompletedAt(),
		CancelledAt:      aggregate.CancelledAt(),
		PaidAt:           aggregate.PaidAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	origin, err := kernel.NewGeoPoint(dto.OriginLat, dto.OriginLng)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewGeoPoint(dto.DestinationLat, dto.DestinationLng)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:               id,
		ClientID:         clientID,
		ClientName:       dto.ClientName,
		CourierID:        courierID,
		CourierName:      dto.CourierName,
		Origin:           origin,
		Destination:      destination,
		OriginLabel:      dto.OriginLabel,
		DestinationLabel: dto.DestinationLabel,
		Description:      dto.Description,
		Price:            dto.Price,
		DistanceKm:       dto.DistanceKm,
		EtaMinutes:       dto.EtaMinutes,
		Status:           order.Status(dto.Status),
		PaymentMethod:    order.PaymentMethod(dto.PaymentMethod),
		PaymentStatus:    order.PaymentStatus(dto.PaymentStatus),
		CreatedAt:        dto.CreatedAt,
		AcceptedAt:       dto.AcceptedAt,
		CompletedAt:      dto.CompletedAt,
		CancelledAt:      dto.CancelledAt,
		PaidAt:           dto.PaidAt,
	})
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
