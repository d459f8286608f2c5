package order

import (
	"fmt"

	"deliverya/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so that orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> InTransit ──> Completed
//	          │
//	          └──> Cancelled
//
// Completed and Cancelled are terminal: no order is ever re-opened.
// Cancellation is only reachable from Pending; once a courier is on the way
// the only exit is Completed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are visible to couriers and waiting to be accepted.
	Pending

	// InTransit indicates a courier accepted the order and is delivering it.
	InTransit

	// Completed indicates the order was delivered. Terminal.
	Completed

	// Cancelled indicates the client withdrew the order before a courier
	// accepted it. Terminal.
	Cancelled
)

// getStatusStrings returns the wire/string representation for every Status,
// including Unknown, to support String().
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		InTransit: "in-transit",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns only valid Status values, to support
// validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		InTransit: "in-transit",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for anything that is not a valid status name.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, InTransit, Completed and Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("pending", "in-transit",
// "completed", "cancelled"), or "unknown" for invalid values.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Accept transitions the status to InTransit.
//
// Valid transitions:
//   - Pending -> InTransit (a courier accepted the order)
//
// Returns (0, error) if the order is not Pending. Used by Order.Accept to
// enforce state transitions.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}

	return InTransit, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InTransit -> Completed (order delivered)
//
// Returns (0, error) if the order is not InTransit. Completed is terminal.
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled (client withdrew the order)
//
// Cancellation of an in-transit order is deliberately not modeled; the UI
// never offers it and compensation rules for it are undefined.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment.
//
// Business rules:
//   - Pending and Cancelled orders must not have a courier assigned
//   - InTransit and Completed orders must have a courier assigned
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && (s == Pending || s == Cancelled) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == InTransit || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}
