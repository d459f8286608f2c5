// Package message provides the append-only chat entity exchanged between the
// client and the courier of an order.
package message
