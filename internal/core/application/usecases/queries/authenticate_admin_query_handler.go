package queries

import (
	"context"
	"errors"

	"penguinadmin/internal/core/domain/model/admin"
	"penguinadmin/internal/pkg/errs"
)

// AdminFinder is the single lookup authentication needs.
type AdminFinder interface {
	GetByEmail(ctx context.Context, email string) (*admin.Admin, error)
}

type AuthenticateAdminQueryHandler struct {
	admins AdminFinder
}

func NewAuthenticateAdminQueryHandler(admins AdminFinder) AuthenticateAdminQueryHandler {
	return AuthenticateAdminQueryHandler{admins: admins}
}

// Handle returns ErrInvalidCredentials for an unknown email and for a wrong
// password alike.
func (h AuthenticateAdminQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateAdminQuery,
) (AuthenticatedAdmin, error) {
	if err := query.Validate(); err != nil {
		return AuthenticatedAdmin{}, err
	}

	account, err := h.admins.GetByEmail(ctx, query.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AuthenticatedAdmin{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthenticatedAdmin{}, err
	}

	if err = account.CheckPassword(query.Password()); err != nil {
		return AuthenticatedAdmin{}, ErrInvalidCredentials
	}

	return AuthenticatedAdmin{ID: account.ID(), Email: account.Email(), Role: account.Role()}, nil
}
