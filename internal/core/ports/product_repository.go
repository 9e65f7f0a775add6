package ports

import (
	"context"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate locks the product row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByNameForUpdate locks the oldest product whose name matches exactly.
	GetByNameForUpdate(ctx context.Context, name string) (*product.Product, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
