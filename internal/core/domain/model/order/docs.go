// Package order provides domain entities and business logic for order
// management in the delivery service. It implements the Order aggregate root
// with lifecycle management, payment settlement and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, route, pricing,
//     payment and lifecycle timestamps
//   - Status: A state machine that enforces valid order status transitions
//   - PaymentMethod / PaymentStatus: Value objects for how and whether the
//     order is settled
//
// Key business rules:
//   - Orders must have a valid client, route and positive price
//   - Order status follows a defined workflow:
//     Pending -> InTransit -> Completed, with Pending -> Cancelled as the
//     only other exit
//   - A courier is assigned exactly once, when the order is accepted
//   - Cash orders settle on completion; card orders settle on an explicit
//     payment confirmation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
