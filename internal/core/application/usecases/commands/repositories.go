// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"deliverya/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserRepoFactory provides access to user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// MessageRepoFactory provides access to message repository within a transaction.
	MessageRepoFactory interface {
		MessageRepository() ports.MessageRepository
	}

	// TelemetryRepoFactory provides access to telemetry repository within a transaction.
	TelemetryRepoFactory interface {
		TelemetryRepository() ports.TelemetryRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// OrderUserUoW manages transactions that read users while writing orders,
	// such as order creation resolving the client's display name.
	OrderUserUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
	}

	// OrderUserUoWFactory creates new order/user unit of work instances.
	OrderUserUoWFactory interface {
		Create() OrderUserUoW
	}

	// AcceptUoW manages the acceptance transaction: the conditional courier
	// assignment plus the seed telemetry sample, committed together.
	AcceptUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
		TelemetryRepoFactory
	}

	// AcceptUoWFactory creates new acceptance unit of work instances.
	AcceptUoWFactory interface {
		Create() AcceptUoW
	}

	// ChatUoW manages transactions for sending chat messages, which need the
	// order for the participant check and the sender for the display name.
	ChatUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
		MessageRepoFactory
	}

	// ChatUoWFactory creates new chat unit of work instances.
	ChatUoWFactory interface {
		Create() ChatUoW
	}

	// TelemetryUoW manages transactions for recording position samples.
	TelemetryUoW interface {
		TxManager
		OrderRepoFactory
		TelemetryRepoFactory
	}

	// TelemetryUoWFactory creates new telemetry unit of work instances.
	TelemetryUoWFactory interface {
		Create() TelemetryUoW
	}
)
