package jobs

import (
	"context"
	"log/slog"

	"deliverya/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TrackingSimulationJob advances the simulated courier positions on a fixed
// schedule. Runs every ten seconds over all in-transit orders.
type TrackingSimulationJob struct {
	handler *commands.SimulateTrackingCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTrackingSimulationJob creates a new job driving the tracking simulation.
// The handler keeps the position cache between ticks, so the same instance
// must also back the tracking queries.
func NewTrackingSimulationJob(
	handler *commands.SimulateTrackingCommandHandler,
	logger *slog.Logger,
) *TrackingSimulationJob {
	return &TrackingSimulationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "tracking_simulation_job"),
	}
}

// Start begins the simulation job to run every ten seconds.
func (j *TrackingSimulationJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSimulateTrackingCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Tracking simulation tick failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking simulation job started (running every ten seconds)")
	return nil
}

// Stop stops the simulation job.
func (j *TrackingSimulationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking simulation job stopped")
}
