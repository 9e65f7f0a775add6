package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns ErrOrderNotFound when the order is no longer active.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return OrderDetail{}, err
	}

	db := h.db.WithContext(ctx)
	detail := OrderDetail{ID: query.OrderID()}

	var status string
	var total decimal.Decimal
	err := db.Raw(`
		SELECT buyer_name, address, sector, email, status, total, created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row().Scan(
		&detail.Buyer.Name,
		&detail.Buyer.Address,
		&detail.Buyer.Sector,
		&detail.Buyer.Email,
		&status,
		&total,
		&detail.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderDetail{}, fmt.Errorf("%w: %s", ErrOrderNotFound, query.OrderID())
	}
	if err != nil {
		return OrderDetail{}, err
	}

	detail.Status = order.Status(status)
	if detail.Total, err = kernel.NewMoney(total); err != nil {
		return OrderDetail{}, err
	}

	if detail.Items, err = scanItems(db, `
		SELECT product_id, name, qty, unit_price, subtotal
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, query.OrderID().Bytes()); err != nil {
		return OrderDetail{}, err
	}

	return detail, nil
}

// scanItems reads (product_id, name, qty, unit_price, subtotal) rows from either
// order_items or delivery_items.
func scanItems(db *gorm.DB, query string, args ...any) ([]ItemView, error) {
	rows, err := db.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ItemView, 0)
	for rows.Next() {
		var item ItemView
		var productID uuid.NullUUID
		var unitPrice, subtotal decimal.Decimal

		if err = rows.Scan(&productID, &item.Name, &item.Qty, &unitPrice, &subtotal); err != nil {
			return nil, err
		}

		if productID.Valid {
			id, idErr := kernel.UUIDFromBytes(productID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			item.ProductID = &id
		}
		if item.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return nil, err
		}
		if item.Subtotal, err = kernel.NewMoney(subtotal); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
