package http

import (
	"errors"
	"net/http"
	"time"

	"deliverya/internal/core/application/usecases/queries"
	"deliverya/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorPayload is the JSON body of every error response.
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP statuses: missing objects are 404,
// lost races and duplicates are 409, rejected input is 400, the rest is 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyTaken):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorPayload{
		Code:    status,
		Message: err.Error(),
	})
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorPayload{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// RegisterUserRequest is the body of POST /api/v1/users.
type RegisterUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ClientID           string  `json:"clientId"`
	OriginAddress      string  `json:"originAddress"`
	DestinationAddress string  `json:"destinationAddress"`
	Description        string  `json:"description"`
	Price              float64 `json:"price"`
	PaymentMethod      string  `json:"paymentMethod"`
}

// ActorRequest carries the acting user of a lifecycle operation: the courier
// for complete, the client for cancel and payment confirmation.
type ActorRequest struct {
	UserID string `json:"userId"`
}

// AcceptOrderRequest is the body of POST /api/v1/orders/:id/accept. The
// coordinates are where the courier is claiming the order from and seed the
// first tracking sample.
type AcceptOrderRequest struct {
	UserID string  `json:"userId"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
}

// TelemetryRequest is the body of POST /api/v1/orders/:id/telemetry.
type TelemetryRequest struct {
	CourierID string  `json:"courierId"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

// SendMessageRequest is the body of POST /api/v1/orders/:id/messages.
type SendMessageRequest struct {
	SenderID string `json:"senderId"`
	Body     string `json:"body"`
}

// IDPayload echoes the identifier of a newly created resource.
type IDPayload struct {
	ID string `json:"id"`
}

// OrderPayload is the JSON shape of one order across all read endpoints.
type OrderPayload struct {
	ID               string     `json:"id"`
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

// BoardPayload is the JSON shape of GET /api/v1/orders/board.
type BoardPayload struct {
	Available []OrderPayload `json:"available"`
	Active    []OrderPayload `json:"active"`
	History   []OrderPayload `json:"history"`
	Summary   SummaryPayload `json:"summary"`
}

// SummaryPayload is the JSON shape of a financial summary.
type SummaryPayload struct {
	TotalSpent          float64 `json:"totalSpent"`
	OrdersCompleted     int     `json:"ordersCompleted"`
	TotalEarned         float64 `json:"totalEarned"`
	DeliveriesCompleted int     `json:"deliveriesCompleted"`
	TotalDistanceKm     float64 `json:"totalDistanceKm"`
}

// MessagePayload is the JSON shape of one chat message.
type MessagePayload struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"orderId"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	Body       string    `json:"body"`
	SentAt     time.Time `json:"sentAt"`
}

// TrackingPayload is the JSON shape of GET /api/v1/orders/:id/tracking.
type TrackingPayload struct {
	OrderID        string     `json:"orderId"`
	Lat            float64    `json:"lat"`
	Lng            float64    `json:"lng"`
	Source         string     `json:"source"`
	RecordedAt     *time.Time `json:"recordedAt,omitempty"`
	DestinationLat float64    `json:"destinationLat"`
	DestinationLng float64    `json:"destinationLng"`
	EtaMinutes     int        `json:"etaMinutes"`
	Status         string     `json:"status"`
}

func toOrderPayload(o queries.OrderResponse) OrderPayload {
	var courierID *string
	if o.CourierID != nil {
		s := o.CourierID.String()
		courierID = &s
	}

	return OrderPayload{
		ID:               o.ID.String(),
		ClientID:         o.ClientID.String(),
		ClientName:       o.ClientName,
		CourierID:        courierID,
		CourierName:      o.CourierName,
		OriginLat:        o.OriginLat,
		OriginLng:        o.OriginLng,
		DestinationLat:   o.DestinationLat,
		DestinationLng:   o.DestinationLng,
		OriginLabel:      o.OriginLabel,
		DestinationLabel: o.DestinationLabel,
		Description:      o.Description,
		Price:            o.Price,
		DistanceKm:       o.DistanceKm,
		EtaMinutes:       o.EtaMinutes,
		Status:           o.Status,
		PaymentMethod:    o.PaymentMethod,
		PaymentStatus:    o.PaymentStatus,
		CreatedAt:        o.CreatedAt,
		AcceptedAt:       o.AcceptedAt,
		CompletedAt:      o.CompletedAt,
		CancelledAt:      o.CancelledAt,
		PaidAt:           o.PaidAt,
	}
}

func toOrderPayloads(orders []queries.OrderResponse) []OrderPayload {
	payloads := make([]OrderPayload, len(orders))
	for i, o := range orders {
		payloads[i] = toOrderPayload(o)
	}
	return payloads
}

func toSummaryPayload(s queries.FinancialSummaryResponse) SummaryPayload {
	return SummaryPayload{
		TotalSpent:          s.TotalSpent,
		OrdersCompleted:     s.OrdersCompleted,
		TotalEarned:         s.TotalEarned,
		DeliveriesCompleted: s.DeliveriesCompleted,
		TotalDistanceKm:     s.TotalDistanceKm,
	}
}

func toMessagePayload(m queries.MessageResponse) MessagePayload {
	return MessagePayload{
		ID:         m.ID.String(),
		OrderID:    m.OrderID.String(),
		SenderID:   m.SenderID.String(),
		SenderName: m.SenderName,
		Body:       m.Body,
		SentAt:     m.SentAt,
	}
}
