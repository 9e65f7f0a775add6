package queries

import (
	"context"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns an empty slice, never nil, when nothing matches.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.buyer_name,
			o.email,
			o.sector,
			o.status,
			o.total,
			o.created_at,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count
		FROM orders o`
	var args []any
	if s := query.Status(); s != nil {
		sql += ` WHERE o.status = ?`
		args = append(args, s.String())
	}
	sql += ` ORDER BY o.created_at DESC, o.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]OrderSummary, 0)
	for rows.Next() {
		var row OrderSummary
		var id uuid.UUID
		var status string
		var total decimal.Decimal

		if err = rows.Scan(
			&id,
			&row.BuyerName,
			&row.Email,
			&row.Sector,
			&status,
			&total,
			&row.CreatedAt,
			&row.ItemCount,
		); err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if row.Total, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}
		row.Status = order.Status(status)
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
