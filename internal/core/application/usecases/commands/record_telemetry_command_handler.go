package commands

import (
	"context"
	"fmt"
	"time"

	"deliverya/internal/core/domain/model/order"
	"deliverya/internal/core/domain/model/tracking"
	"deliverya/internal/pkg/errs"
)

// RecordTelemetryCommandHandler persists a real GPS sample for an in-transit
// order. The tracking read side prefers these samples over the simulated
// position, so a delivery with a live device shows its true location.
type RecordTelemetryCommandHandler struct {
	uowFactory TelemetryUoWFactory
}

// NewRecordTelemetryCommandHandler creates a handler for telemetry recording.
func NewRecordTelemetryCommandHandler(uowFactory TelemetryUoWFactory) RecordTelemetryCommandHandler {
	return RecordTelemetryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the telemetry command. Samples are only accepted while the
// order is actually being delivered.
func (h *RecordTelemetryCommandHandler) Handle(ctx context.Context, cmd RecordTelemetryCommand) error {
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

	tracked, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if tracked.Status() != order.InTransit {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("order %s is not in transit", tracked.ID()))
	}

	sample, err := tracking.NewPoint(cmd.PointID(), tracked.ID(), cmd.Position(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.TelemetryRepository().Add(ctx, sample); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
