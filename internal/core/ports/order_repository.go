package ports

import (
	"context"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// AcceptExclusive persists a courier assignment only if the stored row
	// still has no courier. The write is a single conditional update, so two
	// couriers racing for the same order resolve inside the database: the
	// loser gets an ObjectAlreadyTakenError and no other field of the order
	// is touched.
	AcceptExclusive(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPending retrieves all orders waiting for a courier.
	GetAllPending(ctx context.Context) ([]*order.Order, error)

	// GetAllInTransit retrieves all orders currently being delivered.
	// The tracking simulation drives its cache from this set.
	GetAllInTransit(ctx context.Context) ([]*order.Order, error)

	// GetAllForParticipant retrieves every order the user took part in, on
	// either side. Board projections are derived from this set.
	GetAllForParticipant(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)
}
