package commands

import (
	"context"
	"errors"
	"fmt"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/errs"
)

type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	clock      kernel.Clock
}

func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory, clock kernel.Clock) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle locks the product row so an edit cannot interleave with a finalization
// that is decrementing the same stock.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	repo := uow.ProductRepository()
	p, err := repo.GetForUpdate(ctx, cmd.ProductID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("%w: %s", ErrProductNotFound, cmd.ProductID())
		}
		return err
	}

	f := cmd.Fields()
	if err = p.Update(f.Name, f.Description, f.Price, f.Stock, f.IsActive, h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
