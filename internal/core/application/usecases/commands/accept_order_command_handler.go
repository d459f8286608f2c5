package commands

import (
	"context"
	"time"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/tracking"
	"deliverya/internal/core/ports"
)

// AcceptOrderCommandHandler handles a courier claiming a pending order.
//
// Two couriers tapping the same order at once is the normal case, not the
// edge case, so the final word belongs to the database: the repository writes
// the assignment as a conditional update and exactly one claim survives. The
// loser gets an ObjectAlreadyTakenError and the order is untouched for them.
//
// The acceptance also seeds the first tracking sample at the courier's
// current position, in the same transaction, so the tracking read side has a
// position from the first second of the delivery.
//
// Any registered user can claim an order; acting as a courier is a per-request
// mode, not a property of the account.
type AcceptOrderCommandHandler struct {
	uowFactory AcceptUoWFactory
	publisher  ports.OrderEventPublisher
	notifier   ports.OrderChangeNotifier
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	uowFactory AcceptUoWFactory,
	publisher ports.OrderEventPublisher,
	notifier ports.OrderChangeNotifier,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		notifier:   notifier,
	}
}

// Handle processes the acceptance command.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	claimed, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	courier, err := uow.UserRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = claimed.Accept(courier.ID(), courier.Name(), now); err != nil {
		return err
	}

	if err = orderRepo.AcceptExclusive(ctx, claimed); err != nil {
		return err
	}

	seed, err := tracking.NewPoint(kernel.NewUUID(), claimed.ID(), cmd.Position(), now)
	if err != nil {
		return err
	}
	if err = uow.TelemetryRepository().Add(ctx, seed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	announceOrderChanged(ctx, h.publisher, h.notifier, claimed)
	return nil
}
