package commands

import (
	"context"
	"fmt"
	"time"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/message"
	"deliverya/internal/core/domain/model/order"
	"deliverya/internal/core/ports"
	"deliverya/internal/pkg/errs"
)

// SendMessageCommandHandler appends a chat line to an order's conversation.
// Only the two parties of the order can write to it.
type SendMessageCommandHandler struct {
	uowFactory ChatUoWFactory
	notifier   ports.MessageNotifier
}

// NewSendMessageCommandHandler creates a handler for sending chat messages.
func NewSendMessageCommandHandler(
	uowFactory ChatUoWFactory,
	notifier ports.MessageNotifier,
) SendMessageCommandHandler {
	return SendMessageCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the send command. The sender's display name is denormalized
// onto the message so reading a conversation never joins back to users.
func (h *SendMessageCommandHandler) Handle(ctx context.Context, cmd SendMessageCommand) error {
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

	chatOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !isOrderParty(chatOrder, cmd.SenderID()) {
		return errs.NewValueIsInvalidErrorWithCause("senderID",
			fmt.Errorf("user %s is not a party to order %s", cmd.SenderID(), chatOrder.ID()))
	}

	sender, err := uow.UserRepository().Get(ctx, cmd.SenderID())
	if err != nil {
		return err
	}

	newMessage, err := message.NewMessage(
		cmd.MessageID(), cmd.OrderID(), sender.ID(), sender.Name(), cmd.Body(), time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.MessageRepository().Add(ctx, newMessage); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.notifier != nil {
		h.notifier.NotifyMessage(newMessage)
	}
	return nil
}

func isOrderParty(o *order.Order, userID kernel.UUID) bool {
	if o.ClientID().IsEqual(userID) {
		return true
	}
	return o.CourierID() != nil && o.CourierID().IsEqual(userID)
}
