package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListCatalogQueryHandler struct {
	db *gorm.DB
}

func NewListCatalogQueryHandler(db *gorm.DB) ListCatalogQueryHandler {
	return ListCatalogQueryHandler{db: db}
}

// Handle returns the active products. Stock is not filtered: a sold out
// product stays listed and checkout reports the shortage.
func (h ListCatalogQueryHandler) Handle(ctx context.Context, query ListCatalogQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active
		ORDER BY name, created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductView, 0)
	for rows.Next() {
		p, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
