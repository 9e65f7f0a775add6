package ports

import (
	"context"
	"errors"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained after
// Begin share its transaction; before Begin they run in autocommit mode.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ProductRepository() ProductRepository
	DeliveryRepository() DeliveryRepository
	AdminRepository() AdminRepository
}

// ErrTransactionAborted is wrapped by adapters when the store gave up on a
// transaction: serialization failure, deadlock, lock timeout or an expired
// context. Nothing from the transaction was applied.
var ErrTransactionAborted = errors.New("transaction aborted")
