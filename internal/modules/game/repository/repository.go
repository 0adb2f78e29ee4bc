package repository

import (
	"context"

	"anoa.com/arcadehub/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameRepository is an append-only log: records are created and read, never
// updated or deleted.
type GameRepository interface {
	Create(ctx context.Context, record *entity.GameRecord) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.GameRecord, error)
	CountWonByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(ctx context.Context, record *entity.GameRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *gameRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.GameRecord, error) {
	var records []entity.GameRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("played_at asc").
		Find(&records).Error
	return records, err
}

func (r *gameRepository) CountWonByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.GameRecord{}).
		Where("user_id = ? AND won = ?", userID, true).
		Count(&count).Error
	return count, err
}
