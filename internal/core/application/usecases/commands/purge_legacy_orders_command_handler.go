package commands

import (
	"context"
)

type PurgeLegacyOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewPurgeLegacyOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeLegacyOrdersCommandHandler {
	return PurgeLegacyOrdersCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of orders removed.
func (h *PurgeLegacyOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeLegacyOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.OrderRepository().DeleteLegacy(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
