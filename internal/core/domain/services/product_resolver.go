package services

import (
	"context"
	"errors"
	"fmt"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"
	"penguinadmin/internal/core/domain/model/product"
	"penguinadmin/internal/pkg/errs"
)

// ErrProductMissing is the sentinel wrapped by ProductMissingError.
var ErrProductMissing = errors.New("product missing")

// ProductMissingError reports a line item whose product can no longer be found.
// Identifier is the product id, or the snapshot name for legacy items.
type ProductMissingError struct {
	Identifier string
}

func (e *ProductMissingError) Error() string {
	return fmt.Sprintf("product not found: %s", e.Identifier)
}

func (e *ProductMissingError) Unwrap() error {
	return ErrProductMissing
}

// ProductLookup is the locking read side of the product store used by the resolver.
// Both methods return an error wrapping errs.ErrObjectNotFound when nothing matches.
type ProductLookup interface {
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)
	GetByNameForUpdate(ctx context.Context, name string) (*product.Product, error)
}

// ProductResolver maps an order line item to the live catalog product.
//
// Policy:
//   - items carrying a product reference are resolved by id only
//   - legacy items without a reference fall back to an exact name match
//
// A reference that no longer exists is reported as missing; the name is not
// tried in that case, since the snapshot name may now belong to another product.
type ProductResolver struct{}

func NewProductResolver() ProductResolver {
	return ProductResolver{}
}

// Resolve returns the product for item, locked for update by the lookup.
func (ProductResolver) Resolve(ctx context.Context, lookup ProductLookup, item order.LineItem) (*product.Product, error) {
	var (
		p   *product.Product
		err error
	)
	if item.HasProductRef() {
		p, err = lookup.GetForUpdate(ctx, item.ProductID())
	} else {
		p, err = lookup.GetByNameForUpdate(ctx, item.Name())
	}

	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, &ProductMissingError{Identifier: item.Identifier()}
		}
		return nil, err
	}
	return p, nil
}
