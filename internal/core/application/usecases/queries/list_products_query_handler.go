package queries

import (
	"context"

	"penguinadmin/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const productColumns = `id, name, description, price, stock, image_path, is_active, created_at, updated_at`

type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at DESC, id
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

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (ProductView, error) {
	var p ProductView
	var id uuid.UUID
	var price decimal.Decimal

	if err := row.Scan(
		&id,
		&p.Name,
		&p.Description,
		&price,
		&p.Stock,
		&p.ImagePath,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return ProductView{}, err
	}

	var err error
	if p.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ProductView{}, err
	}
	if p.Price, err = kernel.NewMoney(price); err != nil {
		return ProductView{}, err
	}
	return p, nil
}
