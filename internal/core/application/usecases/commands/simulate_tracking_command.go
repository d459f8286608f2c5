package commands

import (
	"errors"

	"deliverya/internal/pkg/guard"
)

var ErrSimulateTrackingCommandIsNotConstructed = errors.New(
	"SimulateTrackingCommand must be created via NewSimulateTrackingCommand constructor",
)

// SimulateTrackingCommand triggers one tick of the tracking simulation,
// advancing every simulated courier position one step toward its destination.
// Carries no data; the handler derives its work from the set of in-transit
// orders.
//
// Example:
//
//	cmd := NewSimulateTrackingCommand()
//	handler := NewSimulateTrackingCommandHandler(uowFactory)
//
//	// Run periodically to animate courier positions
//	ticker := time.NewTicker(10 * time.Second)
//	for range ticker.C {
//	    if err := handler.Handle(ctx, cmd); err != nil {
//	        log.Printf("Tracking tick failed: %v", err)
//	    }
//	}
type SimulateTrackingCommand struct {
	guard guard.ConstructorGuard
}

// NewSimulateTrackingCommand creates a command to advance the simulation.
// This is a parameterless command that processes all active deliveries.
func NewSimulateTrackingCommand() SimulateTrackingCommand {
	return SimulateTrackingCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SimulateTrackingCommand) Validate() error {
	return c.guard.Validate(ErrSimulateTrackingCommandIsNotConstructed)
}
