package commands

import (
	"context"
	"fmt"
	"time"

	"deliverya/internal/core/ports"
	"deliverya/internal/pkg/errs"
)

// ConfirmPaymentCommandHandler settles a completed card order: the pending
// settlement is confirmed at the payment provider first, then the order is
// marked paid. Cash orders never reach this handler; they settle on
// completion and the domain rejects a second settlement.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
	publisher  ports.OrderEventPublisher
	notifier   ports.OrderChangeNotifier
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmation.
func NewConfirmPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
	publisher ports.OrderEventPublisher,
	notifier ports.OrderChangeNotifier,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		publisher:  publisher,
		notifier:   notifier,
	}
}

// Handle processes the payment confirmation command. Only the client who
// placed the order can settle it.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
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

	settled, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !settled.ClientID().IsEqual(cmd.ClientID()) {
		return errs.NewValueIsInvalidErrorWithCause("clientID",
			fmt.Errorf("only the owning client can pay for order %s", settled.ID()))
	}

	if err = settled.MarkPaid(time.Now().UTC()); err != nil {
		return err
	}

	if err = h.gateway.ConfirmSettlement(ctx, settled.ID()); err != nil {
		return fmt.Errorf("confirming settlement: %w", err)
	}

	if err = orderRepo.Update(ctx, settled); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	announceOrderChanged(ctx, h.publisher, h.notifier, settled)
	return nil
}
