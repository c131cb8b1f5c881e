// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"catering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest set of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OrderUoW manages transactions that mutate an existing order.
	// The customer repository provides the owner's address when an edit
	// triggers a reprice.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlaceOrderUoW manages the order creation transaction: the order, its
	// menu link, its first history entry and its outbox event.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   menu, err := uow.MenuRepository().Get(ctx, menuID)
	//   // ... build the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//   err = uow.OutboxRepository().Add(ctx, o.CreatedEvent())
	//
	//   err = uow.Commit(ctx)
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		OutboxRepoFactory
		MenuRepoFactory
		CustomerRepoFactory
	}

	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// OutboxUoW manages the projection transaction that locks outbox rows.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
