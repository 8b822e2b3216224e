// Package adapters provides the repository implementations for the events feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"hackathon_backend/internal/feature/events/domain/entity"
	"hackathon_backend/internal/feature/events/usecase"
)

// registrationMySQL is the MySQL implementation of RegistrationRepository.
type registrationMySQL struct {
	db *gorm.DB
}

var _ usecase.RegistrationRepository = (*registrationMySQL)(nil)

// NewRegistrationMySQL creates a new registration repository backed by the
// given gorm.DB connection.
func NewRegistrationMySQL(db *gorm.DB) *registrationMySQL {
	return &registrationMySQL{db: db}
}

// Create inserts a registration row.
func (r *registrationMySQL) Create(ctx context.Context, reg *entity.Registration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

// ListNewestFirst returns all registrations ordered by creation time, newest first.
func (r *registrationMySQL) ListNewestFirst(ctx context.Context) ([]entity.Registration, error) {
	var regs []entity.Registration
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

// Count returns the total number of registration rows.
func (r *registrationMySQL) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Registration{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
