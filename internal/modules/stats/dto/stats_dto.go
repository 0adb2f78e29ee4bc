package dto

import "anoa.com/arcadehub/internal/entity"

// GameTypeStat accumulates one game type's totals. The per-type average is
// derived at read time, never stored.
type GameTypeStat struct {
	Played     int `json:"played"`
	Won        int `json:"won"`
	TotalScore int `json:"total_score"`
}

// AverageScore is TotalScore/Played rounded to the nearest integer, 0 when
// the type was never played.
func (s GameTypeStat) AverageScore() int {
	if s.Played == 0 {
		return 0
	}
	return roundDiv(s.TotalScore, s.Played)
}

// AggregateStats is the derived summary of a player's full session history.
type AggregateStats struct {
	TotalGames    int                     `json:"total_games"`
	GamesWon      int                     `json:"games_won"`
	WinRate       int                     `json:"win_rate"`
	TotalCoins    int                     `json:"total_coins"`
	TotalXP       int                     `json:"total_xp"`
	AverageScore  int                     `json:"average_score"`
	GameTypeStats map[string]GameTypeStat `json:"game_type_stats"`
	RecentGames   []entity.GameRecord     `json:"recent_games"`
}

func roundDiv(sum, count int) int {
	if count == 0 {
		return 0
	}
	// Round half up, matching Math.round on non-negative input.
	return (sum*2 + count) / (count * 2)
}

// RoundDiv is exported for sibling services that derive averages the same way.
func RoundDiv(sum, count int) int {
	return roundDiv(sum, count)
}

// RoundRate is the percentage sum/count rounded to the nearest integer.
func RoundRate(part, total int) int {
	return roundDiv(part*100, total)
}
