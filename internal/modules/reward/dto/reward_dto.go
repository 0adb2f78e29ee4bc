package dto

import "anoa.com/arcadehub/internal/entity"

// ClaimResponse is the outcome of a daily-bonus claim. Success=false with a
// 409 means the bonus was already claimed today; the streak is unchanged.
type ClaimResponse struct {
	Success               bool                 `json:"success"`
	Reward                int                  `json:"reward"`
	NewStreak             int                  `json:"new_streak"`
	StreakBonus           int                  `json:"streak_bonus"`
	CompletedAchievements []entity.Achievement `json:"completed_achievements,omitempty"`
}

type StreakResponse struct {
	CurrentStreak int  `json:"current_streak"`
	CanClaim      bool `json:"can_claim"`
}

type UpdateProgressInput struct {
	Category string `json:"category" binding:"required,oneof=games coins streak level"`
	Value    int    `json:"value" binding:"gte=0"`
}
