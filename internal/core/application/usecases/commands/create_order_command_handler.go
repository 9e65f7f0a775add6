package commands

import (
	"context"
	"errors"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"
	"penguinadmin/internal/pkg/errs"
)

// CreateOrderCommandHandler turns storefront lines into an order in New status.
// Each line takes the catalog's current name and price as its snapshot; lines
// pointing at unknown products are dropped.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	clock      kernel.Clock
}

func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory, clock kernel.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns order.ErrOrderHasNoItems when none of the lines matched a product.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	lines := cmd.Lines()
	items := make([]order.LineItem, 0, len(lines))

	for _, line := range lines {
		p, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return err
		}

		item, err := order.NewLineItem(p.ID(), p.Name(), line.Qty, p.Price())
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Buyer(), items, h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
