package commands

import (
	"context"
	"errors"
	"fmt"

	"penguinadmin/internal/core/domain/model/delivery"
	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/services"
	"penguinadmin/internal/pkg/errs"
)

// FinalizeDeliveryCommandHandler runs delivery finalization as one transaction:
//
//  1. lock the order row
//  2. for each item, in stored order: resolve and lock the product, check and
//     decrement its stock, record the delta
//  3. insert the Delivery snapshot
//  4. delete the order
//  5. commit
//
// Any failure before commit rolls the whole transaction back, so stock is never
// decremented without a matching Delivery and an order is finalized at most once.
// A second finalization racing on the same order blocks on the row lock and then
// finds nothing, reporting ErrOrderNotFound.
type FinalizeDeliveryCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	resolver   services.ProductResolver
	clock      kernel.Clock
}

func NewFinalizeDeliveryCommandHandler(
	uowFactory FulfillmentUoWFactory,
	resolver services.ProductResolver,
	clock kernel.Clock,
) FinalizeDeliveryCommandHandler {
	return FinalizeDeliveryCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		clock:      clock,
	}
}

// Handle returns the stored Delivery on success. Reported failures are
// ErrOrderNotFound, *ProductMissingError, *InsufficientStockError and
// errors wrapping ErrTransactionAborted.
func (h *FinalizeDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd FinalizeDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, cmd.OrderID())
		}
		return nil, err
	}

	now := h.clock.Now()
	productRepo := uow.ProductRepository()
	items := o.Items()
	deltas := make([]delivery.StockDelta, 0, len(items))

	for _, item := range items {
		p, resolveErr := h.resolver.Resolve(ctx, productRepo, item)
		if resolveErr != nil {
			return nil, resolveErr
		}

		if err = p.DecreaseStock(item.Qty(), now); err != nil {
			return nil, err
		}

		if err = productRepo.Update(ctx, p); err != nil {
			return nil, err
		}

		deltas = append(deltas, delivery.StockDelta{ProductID: p.ID(), Qty: item.Qty()})
	}

	record, err := delivery.NewDelivery(kernel.NewUUID(), o, deltas, now)
	if err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Add(ctx, record); err != nil {
		return nil, err
	}

	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}
