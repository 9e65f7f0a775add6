package deliveryrepo

import (
	"context"
	"errors"

	"penguinadmin/internal/adapters/out/postgres/pgerrors"
	"penguinadmin/internal/core/domain/model/delivery"
	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository only inserts and reads; there is no update or delete.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db, tracker: tracker}
}

// Add inserts the record with its items and stock deltas.
func (r *GormDeliveryRepository) Add(ctx context.Context, record *delivery.Delivery) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.Classify(err)
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

func (r *GormDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		Preload("StockDelta", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		Take(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", orderID.String())
		}
		return nil, pgerrors.Classify(err)
	}

	return toDomain(dto)
}
