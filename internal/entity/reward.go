package entity

// RewardState is persisted as a single JSON blob per player in the key-value
// store. The camelCase keys are the storage contract; older blobs without
// schemaVersion are migrated on load (see reward repository).
const RewardSchemaVersion = 1

// Achievement categories. Progress updates are scoped to one category at a time.
const (
	CategoryGames  = "games"
	CategoryCoins  = "coins"
	CategoryStreak = "streak"
	CategoryLevel  = "level"
)

const (
	// DailyBonusDays is the length of one claim cycle.
	DailyBonusDays = 7
	// StreakBonusCoins is the flat bonus added to every claim once the streak
	// reaches a full cycle.
	StreakBonusCoins = 100
)

// DailyBonus is one day of the 7-day claim cycle.
type DailyBonus struct {
	Day     int  `json:"day"`
	Reward  int  `json:"reward"`
	Claimed bool `json:"claimed"`
}

// Achievement is a trackable milestone. Completed never reverts to false.
type Achievement struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Icon            string `json:"icon"`
	Requirement     int    `json:"requirement"`
	CurrentProgress int    `json:"currentProgress"`
	Reward          int    `json:"reward"`
	Completed       bool   `json:"completed"`
	Category        string `json:"category"`
}

// RewardState is the per-player streak/claim bookkeeping blob.
type RewardState struct {
	SchemaVersion int           `json:"schemaVersion"`
	DailyBonuses  []DailyBonus  `json:"dailyBonuses"`
	Achievements  []Achievement `json:"achievements"`
	StreakBonus   int           `json:"streakBonus"`
	LastClaimDate string        `json:"lastClaimDate"` // UTC calendar date, "2006-01-02"
	CurrentStreak int           `json:"currentStreak"`
}

// DefaultDailyBonuses builds the 7-slot schedule: 50, 75, 100, 125, 150, 175, 200.
func DefaultDailyBonuses() []DailyBonus {
	bonuses := make([]DailyBonus, DailyBonusDays)
	for i := range bonuses {
		bonuses[i] = DailyBonus{
			Day:    i + 1,
			Reward: 50 + 25*i,
		}
	}
	return bonuses
}

// DefaultAchievements is the seed set every new player starts with.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{
			ID:          "first_game",
			Title:       "First Steps",
			Description: "Play your first game",
			Icon:        "play",
			Requirement: 1,
			Reward:      50,
			Category:    CategoryGames,
		},
		{
			ID:          "game_master",
			Title:       "Game Master",
			Description: "Play 10 games",
			Icon:        "trophy",
			Requirement: 10,
			Reward:      200,
			Category:    CategoryGames,
		},
		{
			ID:          "coin_collector",
			Title:       "Coin Collector",
			Description: "Earn 1000 coins",
			Icon:        "coins",
			Requirement: 1000,
			Reward:      100,
			Category:    CategoryCoins,
		},
		{
			ID:          "streak_warrior",
			Title:       "Streak Warrior",
			Description: "Maintain a 7-day streak",
			Icon:        "fire",
			Requirement: 7,
			Reward:      300,
			Category:    CategoryStreak,
		},
		{
			ID:              "level_up",
			Title:           "Rising Star",
			Description:     "Reach level 5",
			Icon:            "star",
			Requirement:     5,
			CurrentProgress: 1,
			Reward:          250,
			Category:        CategoryLevel,
		},
	}
}

// DefaultRewardState is the blob a player starts with: empty streak, unclaimed
// cycle, seed achievements.
func DefaultRewardState() RewardState {
	return RewardState{
		SchemaVersion: RewardSchemaVersion,
		DailyBonuses:  DefaultDailyBonuses(),
		Achievements:  DefaultAchievements(),
	}
}
