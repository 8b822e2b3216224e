package adapters

import (
	"context"

	"gorm.io/gorm"

	"hackathon_backend/internal/feature/events/domain/entity"
	"hackathon_backend/internal/feature/events/usecase"
)

// ideaMySQL is the MySQL implementation of IdeaRepository.
type ideaMySQL struct {
	db *gorm.DB
}

var _ usecase.IdeaRepository = (*ideaMySQL)(nil)

// NewIdeaMySQL creates a new idea repository backed by the given gorm.DB
// connection.
func NewIdeaMySQL(db *gorm.DB) *ideaMySQL {
	return &ideaMySQL{db: db}
}

// Create inserts an idea row.
func (r *ideaMySQL) Create(ctx context.Context, idea *entity.Idea) error {
	return r.db.WithContext(ctx).Create(idea).Error
}

// ListNewestFirst returns all ideas ordered by creation time, newest first.
func (r *ideaMySQL) ListNewestFirst(ctx context.Context) ([]entity.Idea, error) {
	var ideas []entity.Idea
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}
