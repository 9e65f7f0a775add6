// Package orderrepo persists active orders and their line items.
package orderrepo

import (
	"time"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO maps an order to the "orders" table. Items live in "order_items"
// and are removed with their order.
type OrderDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BuyerName string          `gorm:"type:varchar(255);not null"`
	Address   string          `gorm:"type:varchar(500);not null"`
	Sector    string          `gorm:"type:varchar(255);not null;default:''"`
	Email     string          `gorm:"type:varchar(320);not null"`
	Status    string          `gorm:"type:varchar(16);not null;index"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time       `gorm:"not null;index"`
	Items     []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one snapshot line. ProductID is NULL for legacy items.
type OrderItemDTO struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"not null"`
	ProductID *uuid.UUID      `gorm:"type:uuid;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Qty       int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	buyer := aggregate.Buyer()

	return OrderDTO{
		ID:        orderID,
		BuyerName: buyer.Name,
		Address:   buyer.Address,
		Sector:    buyer.Sector,
		Email:     buyer.Email,
		Status:    aggregate.Status().String(),
		Total:     aggregate.Total().Decimal(),
		CreatedAt: aggregate.CreatedAt(),
		Items:     ItemsFromDomain(orderID, aggregate.Items()),
	}
}

// ItemsFromDomain converts line items in stored order.
func ItemsFromDomain(orderID uuid.UUID, items []order.LineItem) []OrderItemDTO {
	out := make([]OrderItemDTO, 0, len(items))
	for i, it := range items {
		out = append(out, OrderItemDTO{
			OrderID:   orderID,
			Position:  i,
			ProductID: productRef(it),
			Name:      it.Name(),
			Qty:       it.Qty(),
			UnitPrice: it.UnitPrice().Decimal(),
			Subtotal:  it.Subtotal().Decimal(),
		})
	}
	return out
}

func productRef(it order.LineItem) *uuid.UUID {
	if !it.HasProductRef() {
		return nil
	}
	raw := it.ProductID().Bytes()
	return &raw
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items, err := ItemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	buyer := order.Buyer{
		Name:    dto.BuyerName,
		Address: dto.Address,
		Sector:  dto.Sector,
		Email:   dto.Email,
	}

	return order.RestoreOrder(id, buyer, items, total, order.Status(dto.Status), dto.CreatedAt)
}

// ItemsToDomain restores line items; callers pass them sorted by Position.
func ItemsToDomain(dtos []OrderItemDTO) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		var productID kernel.UUID
		if dto.ProductID != nil {
			id, err := kernel.UUIDFromBytes((*dto.ProductID)[:])
			if err != nil {
				return nil, err
			}
			productID = id
		}

		unitPrice, err := kernel.NewMoney(dto.UnitPrice)
		if err != nil {
			return nil, err
		}
		subtotal, err := kernel.NewMoney(dto.Subtotal)
		if err != nil {
			return nil, err
		}

		item, err := order.RestoreLineItem(productID, dto.Name, dto.Qty, unitPrice, subtotal)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
