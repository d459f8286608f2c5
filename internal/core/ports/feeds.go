package ports

import (
	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/message"
	"deliverya/internal/core/domain/model/order"
)

// OrderChangeNotifier is the write side of the in-process order feed.
// Command handlers call it after every committed lifecycle change.
type OrderChangeNotifier interface {
	NotifyOrderChanged(aggregate *order.Order)
}

// OrderChangeFeed is the read side of the in-process order feed. Subscribers
// receive every order change until they unsubscribe; delivery is best-effort
// and never blocks the notifier.
type OrderChangeFeed interface {
	SubscribeOrders(handler func(aggregate *order.Order)) (unsubscribe func())
}

// MessageNotifier is the write side of the per-order chat feed.
type MessageNotifier interface {
	NotifyMessage(aggregate *message.Message)
}

// MessageFeed is the read side of the per-order chat feed. The subscription
// is scoped to one order's conversation.
type MessageFeed interface {
	SubscribeMessages(orderID kernel.UUID, handler func(aggregate *message.Message)) (unsubscribe func())
}
