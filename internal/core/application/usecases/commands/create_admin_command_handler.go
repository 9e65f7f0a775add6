package commands

import (
	"context"
	"errors"
	"fmt"

	"penguinadmin/internal/core/domain/model/admin"
	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/errs"
)

type CreateAdminCommandHandler struct {
	uowFactory AdminUoWFactory
	clock      kernel.Clock
}

func NewCreateAdminCommandHandler(uowFactory AdminUoWFactory, clock kernel.Clock) CreateAdminCommandHandler {
	return CreateAdminCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle returns ErrAdminAlreadyExists when the email is taken.
func (h *CreateAdminCommandHandler) Handle(ctx context.Context, cmd CreateAdminCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	account, err := admin.NewAdmin(cmd.AdminID(), cmd.Email(), cmd.Password(), cmd.Role(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AdminRepository()
	_, err = repo.GetByEmail(ctx, account.Email())
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrAdminAlreadyExists, account.Email())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = repo.Add(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
