// Package http provides the inbound REST adapter. Handlers bind the request,
// build a command or query, dispatch it to the application layer and map
// domain errors onto HTTP statuses. Live updates are exposed as SSE streams
// backed by the in-process feeds.
package http

import (
	"net/http"

	"deliverya/internal/core/application/usecases/commands"
	"deliverya/internal/core/application/usecases/queries"
	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/order"
	"deliverya/internal/core/domain/model/user"
	"deliverya/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to command and query handlers.
type Server struct {
	registerUserHandler   commands.RegisterUserCommandHandler
	createOrderHandler    commands.CreateOrderCommandHandler
	acceptOrderHandler    commands.AcceptOrderCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler
	sendMessageHandler    commands.SendMessageCommandHandler
	recordTelemetry       commands.RecordTelemetryCommandHandler

	orderBoardHandler       queries.GetOrderBoardQueryHandler
	availableOrdersHandler  queries.GetAvailableOrdersQueryHandler
	financialSummaryHandler queries.GetFinancialSummaryQueryHandler
	messagesHandler         queries.GetMessagesQueryHandler
	trackingHandler         queries.GetTrackingQueryHandler

	orderFeed   ports.OrderChangeFeed
	messageFeed ports.MessageFeed
}

// NewServer creates the REST adapter with all its handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	sendMessageHandler commands.SendMessageCommandHandler,
	recordTelemetry commands.RecordTelemetryCommandHandler,
	orderBoardHandler queries.GetOrderBoardQueryHandler,
	availableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	financialSummaryHandler queries.GetFinancialSummaryQueryHandler,
	messagesHandler queries.GetMessagesQueryHandler,
	trackingHandler queries.GetTrackingQueryHandler,
	orderFeed ports.OrderChangeFeed,
	messageFeed ports.MessageFeed,
) *Server {
	return &Server{
		registerUserHandler:     registerUserHandler,
		createOrderHandler:      createOrderHandler,
		acceptOrderHandler:      acceptOrderHandler,
		completeOrderHandler:    completeOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		confirmPaymentHandler:   confirmPaymentHandler,
		sendMessageHandler:      sendMessageHandler,
		recordTelemetry:         recordTelemetry,
		orderBoardHandler:       orderBoardHandler,
		availableOrdersHandler:  availableOrdersHandler,
		financialSummaryHandler: financialSummaryHandler,
		messagesHandler:         messagesHandler,
		trackingHandler:         trackingHandler,
		orderFeed:               orderFeed,
		messageFeed:             messageFeed,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.health)

	api := e.Group("/api/v1")

	api.POST("/users", s.registerUser)

	api.POST("/orders", s.createOrder)
	api.GET("/orders/board", s.orderBoard)
	api.GET("/orders/available", s.availableOrders)
	api.GET("/orders/summary", s.financialSummary)
	api.GET("/orders/stream", s.streamOrders)

	api.POST("/orders/:id/accept", s.acceptOrder)
	api.POST("/orders/:id/complete", s.completeOrder)
	api.POST("/orders/:id/cancel", s.cancelOrder)
	api.POST("/orders/:id/payment/confirm", s.confirmPayment)
	api.POST("/orders/:id/telemetry", s.recordTelemetrySample)
	api.GET("/orders/:id/tracking", s.tracking)

	api.POST("/orders/:id/messages", s.sendMessage)
	api.GET("/orders/:id/messages", s.messages)
	api.GET("/orders/:id/messages/stream", s.streamMessages)
}

func (s *Server) health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) registerUser(ctx echo.Context) error {
	var req RegisterUserRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, req.Name, req.Email, req.Phone, role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDPayload{ID: userID.String()})
}

func (s *Server) createOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return writeError(ctx, err)
	}
	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, clientID,
		req.OriginAddress, req.DestinationAddress, req.Description,
		req.Price, paymentMethod)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDPayload{ID: orderID.String()})
}

func (s *Server) acceptOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req AcceptOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	courierID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, courierID, req.Lat, req.Lng)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) completeOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	courierID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) cancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	clientID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, clientID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) confirmPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	clientID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID, clientID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) recordTelemetrySample(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req TelemetryRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRecordTelemetryCommand(kernel.NewUUID(), orderID, req.Lat, req.Lng)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.recordTelemetry.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) sendMessage(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req SendMessageRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	senderID, err := kernel.UUIDFromString(req.SenderID)
	if err != nil {
		return writeError(ctx, err)
	}

	messageID := kernel.NewUUID()
	cmd, err := commands.NewSendMessageCommand(messageID, orderID, senderID, req.Body)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.sendMessageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDPayload{ID: messageID.String()})
}

func (s *Server) orderBoard(ctx echo.Context) error {
	viewerID, err := kernel.UUIDFromString(ctx.QueryParam("viewer"))
	if err != nil {
		return writeError(ctx, err)
	}
	role, err := user.RoleFromString(ctx.QueryParam("role"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderBoardQuery(viewerID, role)
	if err != nil {
		return writeError(ctx, err)
	}

	board, err := s.orderBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BoardPayload{
		Available: toOrderPayloads(board.Available),
		Active:    toOrderPayloads(board.Active),
		History:   toOrderPayloads(board.History),
		Summary:   toSummaryPayload(board.Summary),
	})
}

func (s *Server) availableOrders(ctx echo.Context) error {
	orders, err := s.availableOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAvailableOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderPayloads(orders))
}

func (s *Server) financialSummary(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.QueryParam("user"))
	if err != nil {
		return writeError(ctx, err)
	}
	role, err := user.RoleFromString(ctx.QueryParam("role"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetFinancialSummaryQuery(userID, role)
	if err != nil {
		return writeError(ctx, err)
	}

	summary, err := s.financialSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSummaryPayload(summary))
}

func (s *Server) messages(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	requesterID, err := kernel.UUIDFromString(ctx.QueryParam("requester"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetMessagesQuery(requesterID, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	thread, err := s.messagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	payloads := make([]MessagePayload, len(thread))
	for i, m := range thread {
		payloads[i] = toMessagePayload(m)
	}
	return ctx.JSON(http.StatusOK, payloads)
}

func (s *Server) tracking(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTrackingQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	position, err := s.trackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackingPayload{
		OrderID:        position.OrderID.String(),
		Lat:            position.Lat,
		Lng:            position.Lng,
		Source:         position.Source,
		RecordedAt:     position.RecordedAt,
		DestinationLat: position.DestinationLat,
		DestinationLng: position.DestinationLng,
		EtaMinutes:     position.EtaMinutes,
		Status:         position.Status,
	})
}
