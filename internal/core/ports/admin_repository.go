package ports

import (
	"context"

	"penguinadmin/internal/core/domain/model/admin"
	"penguinadmin/internal/core/domain/model/kernel"
)

type AdminRepository interface {
	Add(ctx context.Context, account *admin.Admin) error
	Get(ctx context.Context, id kernel.UUID) (*admin.Admin, error)
	GetByEmail(ctx context.Context, email string) (*admin.Admin, error)
}
