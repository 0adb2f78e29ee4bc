package entity

import "time"

// ReferencePlayer is one row of the reference population snapshot the live
// player is merged into. The snapshot is seeded at bootstrap and read-only at
// request time; it is not a multi-writer ranking table.
type ReferencePlayer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	TotalCoins  int       `gorm:"not null;index" json:"total_coins"`
	Level       int       `gorm:"not null" json:"level"`
	GamesPlayed int       `gorm:"not null" json:"games_played"`
	GamesWon    int       `gorm:"not null" json:"games_won"`
	TotalScore  int       `gorm:"not null" json:"total_score"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
