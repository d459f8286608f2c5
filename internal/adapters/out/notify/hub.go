// Package notify provides the in-process fan-out hub behind the live feeds.
// Command handlers push committed changes in; streaming endpoints subscribe
// and forward them to connected clients.
package notify

import (
	"sync"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/message"
	"deliverya/internal/core/domain/model/order"
)

// subscriberBuffer is how many undelivered events a subscriber may fall
// behind before the hub starts dropping events for it.
const subscriberBuffer = 64

// subscription owns the buffered channel for one subscriber. A single
// goroutine drains the channel and runs the handler, so one subscriber sees
// events in the order they were published.
type subscription[T any] struct {
	ch chan T
}

func newSubscription[T any](handler func(T)) *subscription[T] {
	s := &subscription[T]{ch: make(chan T, subscriberBuffer)}

	go func() {
		for event := range s.ch {
			handler(event)
		}
	}()

	return s
}

// deliver enqueues the event without blocking. A full buffer means the
// subscriber is too far behind and the event is dropped for it.
func (s *subscription[T]) deliver(event T) {
	select {
	case s.ch <- event:
	default:
	}
}

// Hub implements the order and message feeds in one place. Delivery is
// best-effort: each subscriber has a buffered channel drained by its own
// goroutine, so a slow client never blocks a command handler or other
// subscribers, and every subscriber receives events in publish order.
type Hub struct {
	mu          sync.RWMutex
	nextID      int
	orderSubs   map[int]*subscription[*order.Order]
	messageSubs map[kernel.UUID]map[int]*subscription[*message.Message]
}

// NewHub creates a hub with no subscribers.
func NewHub() *Hub {
	return &Hub{
		orderSubs:   make(map[int]*subscription[*order.Order]),
		messageSubs: make(map[kernel.UUID]map[int]*subscription[*message.Message]),
	}
}

// NotifyOrderChanged fans an order change out to every order subscriber.
func (h *Hub) NotifyOrderChanged(aggregate *order.Order) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.orderSubs {
		sub.deliver(aggregate)
	}
}

// SubscribeOrders registers a handler for every order change. The returned
// function removes the subscription; calling it more than once is safe.
func (h *Hub) SubscribeOrders(handler func(aggregate *order.Order)) func() {
	sub := newSubscription(handler)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.orderSubs[id] = sub
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.orderSubs, id)
			close(sub.ch)
			h.mu.Unlock()
		})
	}
}

// NotifyMessage fans a chat message out to the subscribers of its order.
func (h *Hub) NotifyMessage(aggregate *message.Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.messageSubs[aggregate.OrderID()] {
		sub.deliver(aggregate)
	}
}

// SubscribeMessages registers a handler for one order's conversation. The
// returned function removes the subscription; calling it more than once is
// safe.
func (h *Hub) SubscribeMessages(orderID kernel.UUID, handler func(aggregate *message.Message)) func() {
	sub := newSubscription(handler)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	if h.messageSubs[orderID] == nil {
		h.messageSubs[orderID] = make(map[int]*subscription[*message.Message])
	}
	h.messageSubs[orderID][id] = sub
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.messageSubs[orderID], id)
			if len(h.messageSubs[orderID]) == 0 {
				delete(h.messageSubs, orderID)
			}
			close(sub.ch)
			h.mu.Unlock()
		})
	}
}
