// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly with raw SQL, rehydrate domain
// aggregates where a projection needs domain behavior, and return plain
// response structs shaped for the transport layer.
package queries

import (
	"time"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// orderColumns is the select list shared by every query that rehydrates full
// order aggregates. Kept in one place so the scan struct and the SQL cannot
// drift apart.
const orderColumns = `
	id, client_id, client_name, courier_id, courier_name,
	origin_lat, origin_lng, destination_lat, destination_lng,
	origin_label, destination_label, description,
	price, distance_km, eta_minutes,
	status, payment_method, payment_status,
	created_at, accepted_at, completed_at, cancelled_at, paid_at
`

type orderRow struct {
	ID               uuid.UUID
	ClientID         uuid.UUID
	ClientName       string
	CourierID        *uuid.UUID
	CourierName      string
	OriginLat        float64
	OriginLng        float64
	DestinationLat   float64
	DestinationLng   float64
	OriginLabel      string
	DestinationLabel string
	Description      string
	Price            float64
	DistanceKm       float64
	EtaMinutes       int
	Status           int
	PaymentMethod    int
	PaymentStatus    int
	CreatedAt        time.Time
	AcceptedAt       *time.Time
	CompletedAt      *time.Time
	CancelledAt      *time.Time
	PaidAt           *time.Time
}

func (r orderRow) toDomain() (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(r.ClientID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if r.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*r.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	origin, err := kernel.NewGeoPoint(r.OriginLat, r.OriginLng)
	if err != nil {
		return nil, err
	}
	destination, err := kernel.NewGeoPoint(r.DestinationLat, r.DestinationLng)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:               id,
		ClientID:         clientID,
		ClientName:       r.ClientName,
		CourierID:        courierID,
		CourierName:      r.CourierName,
		Origin:           origin,
		Destination:      destination,
		OriginLabel:      r.OriginLabel,
		DestinationLabel: r.DestinationLabel,
		Description:      r.Description,
		Price:            r.Price,
		DistanceKm:       r.DistanceKm,
		EtaMinutes:       r.EtaMinutes,
		Status:           order.Status(r.Status),
		PaymentMethod:    order.PaymentMethod(r.PaymentMethod),
		PaymentStatus:    order.PaymentStatus(r.PaymentStatus),
		CreatedAt:        r.CreatedAt,
		AcceptedAt:       r.AcceptedAt,
		CompletedAt:      r.CompletedAt,
		CancelledAt:      r.CancelledAt,
		PaidAt:           r.PaidAt,
	})
}

func rowsToDomain(rows []orderRow) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		o, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// OrderResponse is the transport-facing projection of one order.
type OrderResponse struct {
	ID               kernel.UUID
	ClientID         kernel.UUID
	ClientName       string
	CourierID        *kernel.UUID
	CourierName      string
	OriginLat        float64
	OriginLng        float64
	DestinationLat   float64
	DestinationLng   float64
	OriginLabel      string
	DestinationLabel string
	Description      string
	Price            float64
	DistanceKm       float64
	EtaMinutes       int
	Status           string
	PaymentMethod    string
	PaymentStatus    string
	CreatedAt        time.Time
	AcceptedAt       *time.Time
	CompletedAt      *time.Time
	CancelledAt      *time.Time
	PaidAt           *time.Time
}

func toOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID(),
		ClientID:         o.ClientID(),
		ClientName:       o.ClientName(),
		CourierID:        o.CourierID(),
		CourierName:      o.CourierName(),
		OriginLat:        o.Origin().Lat(),
		OriginLng:        o.Origin().Lng(),
		DestinationLat:   o.Destination().Lat(),
		DestinationLng:   o.Destination().Lng(),
		OriginLabel:      o.OriginLabel(),
		DestinationLabel: o.DestinationLabel(),
		Description:      o.Description(),
		Price:            o.Price(),
		DistanceKm:       o.DistanceKm(),
		EtaMinutes:       o.EtaMinutes(),
		Status:           o.Status().String(),
		PaymentMethod:    o.PaymentMethod().String(),
		PaymentStatus:    o.PaymentStatus().String(),
		CreatedAt:        o.CreatedAt(),
		AcceptedAt:       o.AcceptedAt(),
		CompletedAt:      o.CompletedAt(),
		CancelledAt:      o.CancelledAt(),
		PaidAt:           o.PaidAt(),
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}
	return responses
}
