package queries

import (
	"context"

	"penguinadmin/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

func (h ListDeliveriesQueryHandler) Handle(ctx context.Context, query ListDeliveriesQuery) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	rows, err := db.Raw(`
		SELECT id, order_id, buyer_name, address, sector, email, total, status, delivered_at, day
		FROM deliveries
		ORDER BY delivered_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]DeliveryView, 0)
	for rows.Next() {
		var d DeliveryView
		var id, orderID uuid.UUID
		var total decimal.Decimal

		if err = rows.Scan(
			&id,
			&orderID,
			&d.BuyerName,
			&d.Address,
			&d.Sector,
			&d.Email,
			&total,
			&d.Status,
			&d.DeliveredAt,
			&d.Day,
		); err != nil {
			return nil, err
		}

		if d.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if d.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if d.Total, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for i := range deliveries {
		if deliveries[i].Items, err = scanItems(db, `
			SELECT product_id, name, qty, unit_price, subtotal
			FROM delivery_items
			WHERE delivery_id = ?
			ORDER BY position
		`, deliveries[i].ID.Bytes()); err != nil {
			return nil, err
		}
	}

	return deliveries, nil
}
