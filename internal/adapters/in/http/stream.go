package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/message"
	"deliverya/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// streamBuffer bounds how many events a slow client can fall behind before
// events are dropped for it. Dropping is fine: every endpoint that feeds a
// stream also has a plain GET to re-read the current state.
const streamBuffer = 16

// streamOrders pushes every order lifecycle change to the client as an SSE
// event until the client disconnects.
func (s *Server) streamOrders(ctx echo.Context) error {
	events := make(chan *order.Order, streamBuffer)
	unsubscribe := s.orderFeed.SubscribeOrders(func(aggregate *order.Order) {
		select {
		case events <- aggregate:
		default:
		}
	})
	defer unsubscribe()

	writer := startEventStream(ctx)
	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil
		case aggregate := <-events:
			if err := writeEvent(writer, "order", orderToStreamPayload(aggregate)); err != nil {
				return nil
			}
		}
	}
}

// streamMessages pushes one order's chat messages to the client as SSE events
// until the client disconnects.
func (s *Server) streamMessages(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	events := make(chan *message.Message, streamBuffer)
	unsubscribe := s.messageFeed.SubscribeMessages(orderID, func(aggregate *message.Message) {
		select {
		case events <- aggregate:
		default:
		}
	})
	defer unsubscribe()

	writer := startEventStream(ctx)
	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil
		case aggregate := <-events:
			if err := writeEvent(writer, "message", messageToStreamPayload(aggregate)); err != nil {
				return nil
			}
		}
	}
}

func startEventStream(ctx echo.Context) *echo.Response {
	response := ctx.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set("Cache-Control", "no-cache")
	response.Header().Set("Connection", "keep-alive")
	response.WriteHeader(http.StatusOK)
	response.Flush()
	return response
}

func writeEvent(response *echo.Response, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(response, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	response.Flush()
	return nil
}

func orderToStreamPayload(aggregate *order.Order) OrderPayload {
	var courierID *string
	if id := aggregate.CourierID(); id != nil {
		s := id.String()
		courierID = &s
	}

	return OrderPayload{
		ID:               aggregate.ID().String(),
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

func messageToStreamPayload(aggregate *message.Message) MessagePayload {
	return MessagePayload{
		ID:         aggregate.ID().String(),
		OrderID:    aggregate.OrderID().String(),
		SenderID:   aggregate.SenderID().String(),
		SenderName: aggregate.SenderName(),
		Body:       aggregate.Body(),
		SentAt:     aggregate.SentAt(),
	}
}
