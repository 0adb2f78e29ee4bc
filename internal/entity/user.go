package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// StartingCoins is granted once at registration.
	StartingCoins = 100
	// XPPerLevel is the amount of XP between levels.
	XPPerLevel = 1000
	// LevelUpBonus is the coin bonus credited each time a player levels up.
	LevelUpBonus = 50
)

// User holds the player identity plus the running totals the progression
// engine derives everything else from. Coins, XP, GamesPlayed and TotalScore
// only ever grow.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Coins        int       `gorm:"not null;default:0" json:"coins"`
	XP           int       `gorm:"not null;default:0" json:"xp"`
	Level        int       `gorm:"not null;default:1" json:"level"`
	GamesPlayed  int       `gorm:"not null;default:0" json:"games_played"`
	TotalScore   int       `gorm:"not null;default:0" json:"total_score"`
	AvatarURL    *string   `gorm:"type:text" json:"avatar_url,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// LevelForXP derives the level from accumulated XP.
func LevelForXP(xp int) int {
	return xp/XPPerLevel + 1
}
