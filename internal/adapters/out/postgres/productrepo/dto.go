// Package productrepo persists the product catalog.
package productrepo

import (
	"time"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO maps a product to the "products" table. The check constraint
// backs the domain rule that stock never goes negative.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null;index"`
	Description string          `gorm:"type:text;not null;default:''"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock       int             `gorm:"not null;check:chk_products_stock_non_negative,stock >= 0"`
	ImagePath   string          `gorm:"type:varchar(500);not null;default:''"`
	IsActive    bool            `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID().Bytes(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().Decimal(),
		Stock:       p.Stock(),
		ImagePath:   p.ImagePath(),
		IsActive:    p.IsActive(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id, dto.Name, dto.Description, price, dto.Stock, dto.ImagePath, dto.IsActive, dto.CreatedAt, dto.UpdatedAt,
	)
}
