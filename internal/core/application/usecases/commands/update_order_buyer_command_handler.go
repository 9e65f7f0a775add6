package commands

import (
	"context"
	"errors"
	"fmt"

	"penguinadmin/internal/pkg/errs"
)

// UpdateOrderBuyerCommandHandler rewrites the buyer contact of a New order.
// The order row stays locked until commit so a concurrent status change
// cannot slip between the check and the write.
type UpdateOrderBuyerCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderBuyerCommandHandler(uowFactory OrderUoWFactory) UpdateOrderBuyerCommandHandler {
	return UpdateOrderBuyerCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateOrderBuyerCommandHandler) Handle(ctx context.Context, cmd UpdateOrderBuyerCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("%w: %s", ErrOrderNotFound, cmd.OrderID())
		}
		return err
	}

	if err = o.ChangeContact(cmd.BuyerName(), cmd.Address()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
