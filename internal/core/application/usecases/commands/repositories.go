// Package commands contains the business operations that modify system state.
// Every handler follows the same shape: validate the command, open a unit of
// work, defer its rollback, mutate aggregates through the bound repositories
// and commit.
package commands

import (
	"context"

	"penguinadmin/internal/core/ports"
)

// Unit of Work interfaces narrowed to the repositories each handler touches.
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

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	AdminRepoFactory interface {
		AdminRepository() ports.AdminRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProductUoW manages transactions for catalog edits.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// CheckoutUoW reads the catalog and writes an order in one transaction.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// FulfillmentUoW spans every aggregate touched by delivery finalization.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... decrement stock, record delivery, delete order
	//
	//   err = uow.Commit(ctx)
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		DeliveryRepoFactory
	}

	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	AdminUoW interface {
		TxManager
		AdminRepoFactory
	}

	AdminUoWFactory interface {
		Create() AdminUoW
	}
)
