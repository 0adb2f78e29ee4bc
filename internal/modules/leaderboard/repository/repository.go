package repository

import (
	"context"

	"anoa.com/arcadehub/internal/entity"
	"gorm.io/gorm"
)

// ReferenceRepository provides the reference population snapshot, ordered
// descending by total coins. The snapshot is seeded at bootstrap; the merge
// algorithm never writes to it.
type ReferenceRepository interface {
	Snapshot(ctx context.Context) ([]entity.ReferencePlayer, error)
}

type referenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) Snapshot(ctx context.Context) ([]entity.ReferencePlayer, error) {
	var players []entity.ReferencePlayer
	err := r.db.WithContext(ctx).
		Order("total_coins desc").
		Find(&players).Error
	return players, err
}
