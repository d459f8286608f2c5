package commands

import (
	"context"
	"fmt"
	"time"

	"deliverya/internal/core/domain/model/order"
	"deliverya/internal/core/ports"
	"deliverya/internal/pkg/errs"
)

// CompleteOrderCommandHandler handles the business logic for finishing a
// delivery. Cash orders settle inside the domain on completion; card orders
// additionally get a pending settlement registered at the payment provider,
// within the same transaction boundary, to be confirmed later.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
	publisher  ports.OrderEventPublisher
	notifier   ports.OrderChangeNotifier
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
	publisher ports.OrderEventPublisher,
	notifier ports.OrderChangeNotifier,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		publisher:  publisher,
		notifier:   notifier,
	}
}

// Handle processes the completion command. Only the assigned courier can
// complete the order.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	delivered, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if delivered.CourierID() == nil || !delivered.CourierID().IsEqual(cmd.CourierID()) {
		return errs.NewValueIsInvalidErrorWithCause("courierID",
			fmt.Errorf("only the assigned courier can complete order %s", delivered.ID()))
	}

	if err = delivered.Complete(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, delivered); err != nil {
		return err
	}

	if delivered.PaymentMethod() == order.Card {
		if _, err = h.gateway.CreatePendingSettlement(ctx, delivered.ID(), delivered.Price()); err != nil {
			return fmt.Errorf("registering settlement: %w", err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	announceOrderChanged(ctx, h.publisher, h.notifier, delivered)
	return nil
}
