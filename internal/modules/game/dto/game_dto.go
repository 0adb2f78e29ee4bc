package dto

import "anoa.com/arcadehub/internal/entity"

// CompleteGameInput is the game-completion event a mini-game reports.
type CompleteGameInput struct {
	GameType    string `json:"game_type" binding:"required,min=2,max=50"`
	Score       int    `json:"score" binding:"gte=0"`
	CoinsEarned int    `json:"coins_earned" binding:"gte=0"`
	XPEarned    int    `json:"xp_earned" binding:"gte=0"`
	Won         bool   `json:"won"`
}

// GameResult reports the record plus every progression side effect the event
// triggered.
type GameResult struct {
	Record                *entity.GameRecord   `json:"record"`
	User                  *entity.User         `json:"user"`
	LeveledUp             bool                 `json:"leveled_up"`
	CompletedAchievements []entity.Achievement `json:"completed_achievements,omitempty"`
}
