package queries

import (
	"errors"
	"time"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery lists the whole catalog, newest first.
type ListProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// ProductView is a catalog entry as shown in the admin views.
type ProductView struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
	Stock       int
	ImagePath   string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
