package ports

import (
	"context"

	"penguinadmin/internal/core/domain/model/delivery"
	"penguinadmin/internal/core/domain/model/kernel"
)

// DeliveryRepository is append-only: records are never updated or removed.
type DeliveryRepository interface {
	Add(ctx context.Context, record *delivery.Delivery) error
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)
}
