package commands

import (
	"context"
	"sync"

	"deliverya/internal/core/domain/model/kernel"
)

// TrackingStepSize is how far a simulated courier advances per tick, in
// coordinate degrees. Roughly 90 meters of latitude, tuned together with the
// tick interval so a cross-town delivery animates over a few minutes.
const TrackingStepSize = 0.0008

// SimulateTrackingCommandHandler animates courier positions for deliveries
// that post no real telemetry. Each tick advances every in-transit order's
// simulated position one TrackingStepSize step along the straight line from
// pickup to drop-off, snapping onto the destination when within one step.
//
// Positions live only in memory: the simulation is presentation state, not
// domain state, and a restart simply re-seeds from each order's pickup point.
// The handler is shared between the cron job ticking it and HTTP readers
// calling Position, so the cache is guarded by an RWMutex.
type SimulateTrackingCommandHandler struct {
	uowFactory OrderUoWFactory

	mu        sync.RWMutex
	positions map[string]kernel.GeoPoint
}

// NewSimulateTrackingCommandHandler creates the tracking simulation handler.
// A single instance must be shared by the job and the read side.
func NewSimulateTrackingCommandHandler(uowFactory OrderUoWFactory) *SimulateTrackingCommandHandler {
	return &SimulateTrackingCommandHandler{
		uowFactory: uowFactory,
		positions:  make(map[string]kernel.GeoPoint),
	}
}

// Handle advances the simulation by one tick. Orders seen for the first time
// start at their pickup point; orders that left the in-transit set are
// dropped from the cache.
func (h *SimulateTrackingCommandHandler) Handle(ctx context.Context, cmd SimulateTrackingCommand) error {
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

	orders, err := uow.OrderRepository().GetAllInTransit(ctx)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	next := make(map[string]kernel.GeoPoint, len(orders))
	for _, o := range orders {
		position, ok := h.positions[o.ID().String()]
		if !ok {
			position = o.Origin()
		}

		stepped, stepErr := position.StepToward(o.Destination(), TrackingStepSize)
		if stepErr != nil {
			return stepErr
		}

		next[o.ID().String()] = stepped
	}
	h.positions = next

	return nil
}

// Position returns the simulated position of an order, if the simulation is
// currently animating it. Safe for concurrent use with Handle.
func (h *SimulateTrackingCommandHandler) Position(orderID kernel.UUID) (kernel.GeoPoint, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	position, ok := h.positions[orderID.String()]
	return position, ok
}
