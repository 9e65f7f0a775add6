package commands

import (
	"context"
	"errors"
	"fmt"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/errs"
)

type SetProductImageCommandHandler struct {
	uowFactory ProductUoWFactory
	clock      kernel.Clock
}

func NewSetProductImageCommandHandler(uowFactory ProductUoWFactory, clock kernel.Clock) SetProductImageCommandHandler {
	return SetProductImageCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h *SetProductImageCommandHandler) Handle(ctx context.Context, cmd SetProductImageCommand) error {
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

	if err = p.SetImage(cmd.ImagePath(), h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
