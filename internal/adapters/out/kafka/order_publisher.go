// Package kafka publishes order lifecycle changes to a Kafka topic so other
// processes can follow the order stream without polling the database.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"deliverya/internal/core/domain/model/order"

	"github.com/IBM/sarama"
)

// orderChangedEvent is the wire shape of one order change. It carries the
// full order state, so consumers never need a follow-up read.
type orderChangedEvent struct {
	OrderID          string     `json:"orderId"`
	ClientID         string     `json:"clientId"`
	ClientName       string     `json:"clientName"`
	CourierID        *string    `json:"courierId,omitempty"`
	CourierName      string     `json:"courierName,omitempty"`
	OriginLat        float64    `json:"originLat"`
	OriginLng        float64    `json:"originLng"`
	DestinationLat   float64    `json:"destinationLat"`
	DestinationLng   float64    `json:"destinationLng"`
	OriginLabel      string     `json:"originLabel"`
	DestinationLabel string     `json:"destinationLabel"`
	Description      string     `json:"description,omitempty"`
	Price            float64    `json:"price"`
	DistanceKm       float64    `json:"distanceKm"`
	EtaMinutes       int        `json:"etaMinutes"`
	Status           string     `json:"status"`
	PaymentMethod    string     `json:"paymentMethod"`
	PaymentStatus    string     `json:"paymentStatus"`
	CreatedAt        time.Time  `json:"createdAt"`
	AcceptedAt       *time.Time `json:"acceptedAt,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	CancelledAt      *time.Time `json:"cancelledAt,omitempty"`
	PaidAt           *time.Time `json:"paidAt,omitempty"`
}

// SaramaOrderPublisher implements OrderEventPublisher on a synchronous Kafka
// producer. Messages are keyed by order id, so every order's changes land in
// one partition and stay ordered.
type SaramaOrderPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewSaramaOrderPublisher connects a synchronous producer to the given
// brokers. The producer waits for acknowledgment from all in-sync replicas
// before reporting success.
func NewSaramaOrderPublisher(brokers []string, topic string) (*SaramaOrderPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 100 * time.Millisecond
	config.Producer.Return.Successes = true
	config.Net.DialTimeout = 30 * time.Second
	config.Net.ReadTimeout = 30 * time.Second
	config.Net.WriteTimeout = 30 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return NewSaramaOrderPublisherWithProducer(producer, topic), nil
}

// NewSaramaOrderPublisherWithProducer wraps an existing producer. Used by
// tests and by callers that manage the producer lifecycle themselves.
func NewSaramaOrderPublisherWithProducer(producer sarama.SyncProducer, topic string) *SaramaOrderPublisher {
	return &SaramaOrderPublisher{
		producer: producer,
		topic:    topic,
	}
}

// PublishOrderChanged sends the full order state to the topic.
func (p *SaramaOrderPublisher) PublishOrderChanged(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(toEvent(aggregate))
	if err != nil {
		return fmt.Errorf("failed to encode order event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(aggregate.ID().String()),
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	return nil
}

// Close shuts down the underlying producer.
func (p *SaramaOrderPublisher) Close() error {
	return p.producer.Close()
}

func toEvent(aggregate *order.Order) orderChangedEvent {
	var courierID *string
	if id := aggregate.CourierID(); id != nil {
		s := id.String()
		courierID = &s
	}

	return orderChangedEvent{
		OrderID:          aggregate.ID().String(),
		ClientID:         aggregate.ClientID().String(),
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
		Status:           aggregate.Status().String(),
		PaymentMethod:    aggregate.PaymentMethod().String(),
		PaymentStatus:    aggregate.PaymentStatus().String(),
		CreatedAt:        aggregate.CreatedAt(),
		AcceptedAt:       aggregate.AcceptedAt(),
		CompletedAt:      aggregate.CompletedAt(),
		CancelledAt:      aggregate.CancelledAt(),
		PaidAt:           aggregate.PaidAt(),
	}
}
