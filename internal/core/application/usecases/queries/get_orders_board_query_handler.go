package queries

import (
	"context"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrdersBoardQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersBoardQueryHandler(db *gorm.DB) GetOrdersBoardQueryHandler {
	return GetOrdersBoardQueryHandler{db: db}
}

// Handle reads orders and items in one pass; rows arrive grouped by order with
// items in checkout position.
func (h GetOrdersBoardQueryHandler) Handle(ctx context.Context, query GetOrdersBoardQuery) ([]BoardOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.id, o.buyer_name, o.status, i.name, i.qty
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		ORDER BY o.created_at, o.id, i.position
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	board := make([]BoardOrder, 0)
	for rows.Next() {
		var id uuid.UUID
		var buyerName, status string
		var item BoardItem

		if err = rows.Scan(&id, &buyerName, &status, &item.Name, &item.Qty); err != nil {
			return nil, err
		}

		if n := len(board); n > 0 && board[n-1].ID.Bytes() == id {
			board[n-1].Items = append(board[n-1].Items, item)
			continue
		}

		orderID, convErr := kernel.UUIDFromBytes(id[:])
		if convErr != nil {
			return nil, convErr
		}
		board = append(board, BoardOrder{
			ID:        orderID,
			ShortID:   ShortID(orderID),
			BuyerName: buyerName,
			Status:    order.Status(status),
			Items:     []BoardItem{item},
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}
