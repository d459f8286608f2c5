// Package payment provides the payment provider adapter. The simulated
// gateway stands in for a real card processor: it issues transaction ids and
// tracks settlement state in memory.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/pkg/errs"
)

type settlementState int

const (
	settlementPending settlementState = iota
	settlementConfirmed
)

type settlement struct {
	transactionID string
	amount        float64
	state         settlementState
}

// SimulatedGateway implements PaymentGateway without an external provider.
// Settlements live in memory and reset on restart, which is acceptable: the
// durable payment state lives on the order itself.
type SimulatedGateway struct {
	logger *slog.Logger

	mu          sync.Mutex
	settlements map[string]*settlement
	now         func() time.Time
}

// NewSimulatedGateway creates an empty gateway.
func NewSimulatedGateway(logger *slog.Logger) *SimulatedGateway {
	return &SimulatedGateway{
		logger:      logger.With("component", "payment_gateway"),
		settlements: make(map[string]*settlement),
		now:         time.Now,
	}
}

// CreatePendingSettlement registers a settlement for a card order and returns
// the transaction id. Calling it again for the same order returns the
// existing transaction instead of opening a second one.
func (g *SimulatedGateway) CreatePendingSettlement(
	ctx context.Context, orderID kernel.UUID, amount float64,
) (string, error) {
	if err := orderID.Validate(); err != nil {
		return "", err
	}
	if amount <= 0 {
		return "", errs.NewValueIsOutOfRangeError("amount", amount, 0.01, nil)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if existing, ok := g.settlements[orderID.String()]; ok {
		return existing.transactionID, nil
	}

	transactionID := fmt.Sprintf("TRX-%d-%s", g.now().UnixMilli(), orderID.String()[:8])
	g.settlements[orderID.String()] = &settlement{
		transactionID: transactionID,
		amount:        amount,
		state:         settlementPending,
	}

	g.logger.InfoContext(ctx, "Settlement created",
		"order_id", orderID.String(), "transaction_id", transactionID, "amount", amount)
	return transactionID, nil
}

// ConfirmSettlement marks the order's pending settlement as paid. Returns
// ObjectNotFoundError when no settlement was ever created for the order.
func (g *SimulatedGateway) ConfirmSettlement(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	existing, ok := g.settlements[orderID.String()]
	if !ok {
		return errs.NewObjectNotFoundError("settlement", orderID.String())
	}
	existing.state = settlementConfirmed

	g.logger.InfoContext(ctx, "Settlement confirmed",
		"order_id", orderID.String(), "transaction_id", existing.transactionID)
	return nil
}
