package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

// Handle looks at the active orders first and falls back to the delivery
// archive. An id found in neither yields ErrOrderNotFound.
func (h GetOrderTrackingQueryHandler) Handle(ctx context.Context, query GetOrderTrackingQuery) (OrderTracking, error) {
	if err := query.Validate(); err != nil {
		return OrderTracking{}, err
	}

	var status string
	err := h.db.WithContext(ctx).Raw(`
		SELECT status FROM orders WHERE id = @id
		UNION ALL
		SELECT status FROM deliveries WHERE order_id = @id
		LIMIT 1
	`, sql.Named("id", query.OrderID().Bytes())).Row().Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderTracking{}, fmt.Errorf("%w: %s", ErrOrderNotFound, query.OrderID())
	}
	if err != nil {
		return OrderTracking{}, err
	}

	return OrderTracking{OrderID: query.OrderID(), Status: status}, nil
}
