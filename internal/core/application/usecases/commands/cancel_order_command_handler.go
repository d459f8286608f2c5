package commands

import (
	"context"
	"fmt"
	"time"

	"deliverya/internal/core/ports"
	"deliverya/internal/pkg/errs"
)

// CancelOrderCommandHandler handles a client withdrawing their own pending
// order. Once a courier accepted, cancellation is no longer possible; the
// state machine rejects it.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	notifier   ports.OrderChangeNotifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	notifier ports.OrderChangeNotifier,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command. Only the client who placed the
// order can withdraw it.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	withdrawn, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !withdrawn.ClientID().IsEqual(cmd.ClientID()) {
		return errs.NewValueIsInvalidErrorWithCause("clientID",
			fmt.Errorf("only the owning client can cancel order %s", withdrawn.ID()))
	}

	if err = withdrawn.Cancel(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, withdrawn); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	announceOrderChanged(ctx, h.publisher, h.notifier, withdrawn)
	return nil
}
