// Package adminrepo persists back-office accounts.
package adminrepo

import (
	"time"

	"penguinadmin/internal/core/domain/model/admin"
	"penguinadmin/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type AdminDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(320);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(32);not null;default:'admin'"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (AdminDTO) TableName() string {
	return "admins"
}

func fromDomain(a *admin.Admin) AdminDTO {
	return AdminDTO{
		ID:           a.ID().Bytes(),
		Email:        a.Email(),
		PasswordHash: a.PasswordHash(),
		Role:         a.Role(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}

// ToDomain is shared with the login query, which reads admins directly.
func ToDomain(dto AdminDTO) (*admin.Admin, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return admin.RestoreAdmin(id, dto.Email, dto.PasswordHash, dto.Role, dto.CreatedAt, dto.UpdatedAt)
}
