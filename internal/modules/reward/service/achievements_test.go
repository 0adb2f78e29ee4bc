package service

import (
	"testing"

	"anoa.com/arcadehub/internal/entity"
	"github.com/stretchr/testify/require"
)

func findAchievement(t *testing.T, state entity.RewardState, id string) entity.Achievement {
	t.Helper()
	for _, achievement := range state.Achievements {
		if achievement.ID == id {
			return achievement
		}
	}
	t.Fatalf("achievement %s not found", id)
	return entity.Achievement{}
}

func TestApplyProgressCompletesAtRequirement(t *testing.T) {
	state := entity.DefaultRewardState()

	completed := ApplyProgress(&state, entity.CategoryGames, 10)

	require.Len(t, completed, 2)
	require.True(t, findAchievement(t, state, "first_game").Completed)
	require.True(t, findAchievement(t, state, "game_master").Completed)
}

func TestApplyProgressBelowRequirement(t *testing.T) {
	state := entity.DefaultRewardState()

	completed := ApplyProgress(&state, entity.CategoryGames, 3)

	require.Len(t, completed, 1)
	require.Equal(t, "first_game", completed[0].ID)

	master := findAchievement(t, state, "game_master")
	require.False(t, master.Completed)
	require.Equal(t, 3, master.CurrentProgress)
}

func TestApplyProgressCompletionIsSticky(t *testing.T) {
	state := entity.DefaultRewardState()

	completed := ApplyProgress(&state, entity.CategoryGames, 12)
	require.Len(t, completed, 2)

	// A later, lower report never reverts a completed achievement, and a
	// repeat of the same milestone doesn't complete it twice.
	completed = ApplyProgress(&state, entity.CategoryGames, 1)
	require.Empty(t, completed)
	require.True(t, findAchievement(t, state, "game_master").Completed)
	require.Equal(t, 12, findAchievement(t, state, "game_master").CurrentProgress)
}

func TestApplyProgressOverwritesNotMax(t *testing.T) {
	state := entity.DefaultRewardState()

	ApplyProgress(&state, entity.CategoryCoins, 800)
	ApplyProgress(&state, entity.CategoryCoins, 200)

	// Stored contract: progress is the latest reported value, not the peak.
	require.Equal(t, 200, findAchievement(t, state, "coin_collector").CurrentProgress)
}

func TestApplyProgressScopedToCategory(t *testing.T) {
	state := entity.DefaultRewardState()

	completed := ApplyProgress(&state, entity.CategoryStreak, 7)

	require.Len(t, completed, 1)
	require.Equal(t, "streak_warrior", completed[0].ID)
	require.False(t, findAchievement(t, state, "first_game").Completed)
	require.Equal(t, 0, findAchievement(t, state, "first_game").CurrentProgress)
	require.Equal(t, 0, findAchievement(t, state, "coin_collector").CurrentProgress)
}

func TestApplyProgressLevelAchievement(t *testing.T) {
	state := entity.DefaultRewardState()
	require.Equal(t, 1, findAchievement(t, state, "level_up").CurrentProgress)

	completed := ApplyProgress(&state, entity.CategoryLevel, 5)
	require.Len(t, completed, 1)
	require.Equal(t, "level_up", completed[0].ID)
	require.Equal(t, 250, completed[0].Reward)
}
