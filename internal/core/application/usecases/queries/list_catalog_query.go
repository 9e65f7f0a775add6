package queries

import (
	"errors"

	"penguinadmin/internal/pkg/guard"
)

var ErrListCatalogQueryIsNotConstructed = errors.New(
	"ListCatalogQuery must be created via NewListCatalogQuery constructor",
)

// ListCatalogQuery lists the products offered on the storefront: active ones
// only, in name order.
type ListCatalogQuery struct {
	guard guard.ConstructorGuard
}

func NewListCatalogQuery() ListCatalogQuery {
	return ListCatalogQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCatalogQuery) Validate() error {
	return q.guard.Validate(ErrListCatalogQueryIsNotConstructed)
}
