package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameRecord is one completed mini-game session. Records are immutable once
// created; the table is an append-only log and nothing ever updates a row.
type GameRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index:idx_game_user_date,priority:1;not null" json:"user_id"`
	GameType    string    `gorm:"size:50;not null" json:"game_type"` // 'number-guess', 'quick-click'
	Score       int       `gorm:"not null" json:"score"`
	CoinsEarned int       `gorm:"not null" json:"coins_earned"`
	XPEarned    int       `gorm:"not null" json:"xp_earned"`
	Won         bool      `gorm:"not null" json:"won"`
	PlayedAt    time.Time `gorm:"index:idx_game_user_date,priority:2;not null" json:"played_at"`
}

func (r *GameRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
