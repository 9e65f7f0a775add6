package commands

import (
	"context"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/product"
)

type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	clock      kernel.Clock
}

func NewCreateProductCommandHandler(uowFactory ProductUoWFactory, clock kernel.Clock) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now()
	f := cmd.Fields()
	p, err := product.NewProduct(cmd.ProductID(), f.Name, f.Description, f.Price, f.Stock, f.IsActive, now)
	if err != nil {
		return err
	}
	if cmd.ImagePath() != "" {
		if err = p.SetImage(cmd.ImagePath(), now); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
