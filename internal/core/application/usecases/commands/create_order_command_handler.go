package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"deliverya/internal/core/domain/model/order"
	"deliverya/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves both addresses through the geocoder, derives distance and the
// delivery estimate, and persists the order in pending status.
//
// The geocoder adapter serializes its upstream calls, so resolving origin
// before destination here is enough to keep the provider's rate limit.
//
// regionHint narrows free-text lookups to the deployment's service area and is
// passed through to the geocoder on every resolution.
type CreateOrderCommandHandler struct {
	uowFactory OrderUserUoWFactory
	geocoder   ports.Geocoder
	regionHint string
	publisher  ports.OrderEventPublisher
	notifier   ports.OrderChangeNotifier
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUserUoWFactory,
	geocoder ports.Geocoder,
	regionHint string,
	publisher ports.OrderEventPublisher,
	notifier ports.OrderChangeNotifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		regionHint: regionHint,
		publisher:  publisher,
		notifier:   notifier,
	}
}

// Handle processes the order creation command.
// The free-text addresses stay on the order as labels; only the coordinates
// come from the geocoder. After the commit the change is announced to the
// broker and the in-process feed.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	origin, err := h.geocoder.Resolve(ctx, cmd.OriginAddress(), h.regionHint)
	if err != nil {
		return fmt.Errorf("resolving origin address: %w", err)
	}

	destination, err := h.geocoder.Resolve(ctx, cmd.DestinationAddress(), h.regionHint)
	if err != nil {
		return fmt.Errorf("resolving destination address: %w", err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	client, err := uow.UserRepository().Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		client.ID(),
		client.Name(),
		origin.Position,
		destination.Position,
		cmd.OriginAddress(),
		cmd.DestinationAddress(),
		cmd.Description(),
		cmd.Price(),
		cmd.PaymentMethod(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	announceOrderChanged(ctx, h.publisher, h.notifier, newOrder)
	return nil
}

// announceOrderChanged pushes a committed order change to the broker and the
// in-process feed. The change is already durable, so a broker failure is
// logged and swallowed instead of failing the request.
func announceOrderChanged(
	ctx context.Context,
	publisher ports.OrderEventPublisher,
	notifier ports.OrderChangeNotifier,
	aggregate *order.Order,
) {
	if publisher != nil {
		if err := publisher.PublishOrderChanged(ctx, aggregate); err != nil {
			slog.Warn("publishing order change failed",
				"component", "commands",
				"orderID", aggregate.ID().String(),
				"error", err)
		}
	}

	if notifier != nil {
		notifier.NotifyOrderChanged(aggregate)
	}
}
