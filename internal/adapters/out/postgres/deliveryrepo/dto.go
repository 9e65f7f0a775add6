// Package deliveryrepo persists the append-only delivery audit records.
package deliveryrepo

import (
	"time"

	"penguinadmin/internal/core/domain/model/delivery"
	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryDTO maps a delivery to the "deliveries" table. The partition
// columns are indexed for the summary queries.
type DeliveryDTO struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex"`
	Total       decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	BuyerName   string            `gorm:"type:varchar(255);not null"`
	Address     string            `gorm:"type:varchar(500);not null"`
	Sector      string            `gorm:"type:varchar(255);not null;default:''"`
	Email       string            `gorm:"type:varchar(320);not null"`
	DeliveredAt time.Time         `gorm:"not null;index"`
	Status      string            `gorm:"type:varchar(16);not null"`
	Day         string            `gorm:"type:char(10);not null;index"`
	Month       string            `gorm:"type:char(7);not null;index"`
	Year        int               `gorm:"not null;index"`
	Items       []DeliveryItemDTO `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
	StockDelta  []StockDeltaDTO   `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

type DeliveryItemDTO struct {
	ID         uint64          `gorm:"primaryKey;autoIncrement"`
	DeliveryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position   int             `gorm:"not null"`
	ProductID  *uuid.UUID      `gorm:"type:uuid"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Qty        int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Subtotal   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (DeliveryItemDTO) TableName() string {
	return "delivery_items"
}

type StockDeltaDTO struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	DeliveryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position   int       `gorm:"not null"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Qty        int       `gorm:"not null"`
}

func (StockDeltaDTO) TableName() string {
	return "delivery_stock_deltas"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	id := d.ID().Bytes()
	buyer := d.Buyer()
	partition := d.Partition()

	items := make([]DeliveryItemDTO, 0, len(d.Items()))
	for i, it := range d.Items() {
		var productID *uuid.UUID
		if it.HasProductRef() {
			raw := it.ProductID().Bytes()
			productID = &raw
		}
		items = append(items, DeliveryItemDTO{
			DeliveryID: id,
			Position:   i,
			ProductID:  productID,
			Name:       it.Name(),
			Qty:        it.Qty(),
			UnitPrice:  it.UnitPrice().Decimal(),
			Subtotal:   it.Subtotal().Decimal(),
		})
	}

	deltas := make([]StockDeltaDTO, 0, len(d.StockDelta()))
	for i, sd := range d.StockDelta() {
		deltas = append(deltas, StockDeltaDTO{
			DeliveryID: id,
			Position:   i,
			ProductID:  sd.ProductID.Bytes(),
			Qty:        sd.Qty,
		})
	}

	return DeliveryDTO{
		ID:          id,
		OrderID:     d.OrderID().Bytes(),
		Total:       d.Total().Decimal(),
		BuyerName:   buyer.Name,
		Address:     buyer.Address,
		Sector:      buyer.Sector,
		Email:       buyer.Email,
		DeliveredAt: d.DeliveredAt(),
		Status:      d.StatusLabel(),
		Day:         partition.Day,
		Month:       partition.Month,
		Year:        partition.Year,
		Items:       items,
		StockDelta:  deltas,
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, it := range dto.Items {
		var productID kernel.UUID
		if it.ProductID != nil {
			if productID, err = kernel.UUIDFromBytes((*it.ProductID)[:]); err != nil {
				return nil, err
			}
		}
		unitPrice, priceErr := kernel.NewMoney(it.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		subtotal, subErr := kernel.NewMoney(it.Subtotal)
		if subErr != nil {
			return nil, subErr
		}
		item, itemErr := order.RestoreLineItem(productID, it.Name, it.Qty, unitPrice, subtotal)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	deltas := make([]delivery.StockDelta, 0, len(dto.StockDelta))
	for _, sd := range dto.StockDelta {
		productID, idErr := kernel.UUIDFromBytes(sd.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}
		deltas = append(deltas, delivery.StockDelta{ProductID: productID, Qty: sd.Qty})
	}

	buyer := order.Buyer{Name: dto.BuyerName, Address: dto.Address, Sector: dto.Sector, Email: dto.Email}
	partition := delivery.DatePartition{Day: dto.Day, Month: dto.Month, Year: dto.Year}

	return delivery.RestoreDelivery(id, orderID, items, total, buyer, dto.DeliveredAt, dto.Status, deltas, partition)
}
