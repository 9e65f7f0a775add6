package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type GetProductQueryHandler struct {
	db *gorm.DB
}

func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle returns ErrProductNotFound for an unknown id.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductView, error) {
	if err := query.Validate(); err != nil {
		return ProductView{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+productColumns+`
		FROM products
		WHERE id = ?
	`, query.ProductID().Bytes()).Row()

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ProductView{}, fmt.Errorf("%w: %s", ErrProductNotFound, query.ProductID())
	}
	return p, err
}
