// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. TrackingSimulationJob - Runs every ten seconds to advance the simulated
// courier position of every in-transit order one step toward its destination.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(simulateTrackingHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The simulation uses the cron expression "*/10 * * * * *", one tick every
// ten seconds. Each tick moves every tracked order a fixed step, so the
// apparent speed is constant regardless of load.
//
// # Error Handling
//
// Simulation failures are logged and the tick is skipped; the next tick
// re-reads the in-transit set, so one bad tick never corrupts positions.
package jobs
