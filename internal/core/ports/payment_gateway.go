package ports

import (
	"context"

	"deliverya/internal/core/domain/model/kernel"
)

// PaymentGateway abstracts the external payment provider used for card
// settlements. Cash never reaches the gateway.
type PaymentGateway interface {
	// CreatePendingSettlement registers a settlement for a completed card
	// order and returns the provider's transaction id.
	CreatePendingSettlement(ctx context.Context, orderID kernel.UUID, amount float64) (string, error)

	// ConfirmSettlement marks the pending settlement of the order as paid at
	// the provider.
	ConfirmSettlement(ctx context.Context, orderID kernel.UUID) error
}
