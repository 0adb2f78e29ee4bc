package dto

// PlayerRankEntry is one row of a computed leaderboard. Rank is a 1-based,
// contiguous, unique position across the full merged list. Entries are
// ephemeral: recomputed per query, never persisted.
type PlayerRankEntry struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	TotalCoins   int    `json:"total_coins"`
	Level        int    `json:"level"`
	GamesPlayed  int    `json:"games_played"`
	GamesWon     int    `json:"games_won"`
	TotalScore   int    `json:"total_score"`
	WinRate      int    `json:"win_rate"`
	AverageScore int    `json:"average_score"`
	Rank         int    `json:"rank"`
}
