package adminrepo

import (
	"context"
	"errors"

	"penguinadmin/internal/adapters/out/postgres/pgerrors"
	"penguinadmin/internal/core/domain/model/admin"
	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormAdminRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormAdminRepository(db *gorm.DB, tracker aggregateTracker) *GormAdminRepository {
	return &GormAdminRepository{db: db, tracker: tracker}
}

func (r *GormAdminRepository) Add(ctx context.Context, account *admin.Admin) error {
	if err := account.Validate(); err != nil {
		return err
	}

	dto := fromDomain(account)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.Classify(err)
	}

	r.tracker.TrackAggregate(account.ID(), account)
	return nil
}

func (r *GormAdminRepository) Get(ctx context.Context, id kernel.UUID) (*admin.Admin, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.take(ctx, id.String(), "id = ?", id.Bytes())
}

func (r *GormAdminRepository) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	email = admin.NormalizeEmail(email)
	return r.take(ctx, email, "email = ?", email)
}

func (r *GormAdminRepository) take(ctx context.Context, ref, query string, args ...any) (*admin.Admin, error) {
	var dto AdminDTO
	if err := r.db.WithContext(ctx).Where(query, args...).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("admin", ref)
		}
		return nil, pgerrors.Classify(err)
	}
	return ToDomain(dto)
}
