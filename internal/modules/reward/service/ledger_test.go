package service

import (
	"testing"
	"time"

	"anoa.com/arcadehub/internal/entity"
	"anoa.com/arcadehub/pkg/apperror"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, date string) time.Time {
	t.Helper()
	parsed, err := time.Parse(DayFormat, date)
	require.NoError(t, err)
	return parsed
}

func TestClaimFirstEver(t *testing.T) {
	state, result, err := Claim(entity.DefaultRewardState(), day(t, "2026-03-01"))
	require.NoError(t, err)

	require.True(t, result.Success)
	require.Equal(t, 50, result.Reward)
	require.Equal(t, 1, result.NewStreak)

	require.Equal(t, 1, state.CurrentStreak)
	require.Equal(t, "2026-03-01", state.LastClaimDate)
	require.Equal(t, 0, state.StreakBonus)
	require.True(t, state.DailyBonuses[0].Claimed)
	for _, bonus := range state.DailyBonuses[1:] {
		require.False(t, bonus.Claimed)
	}
}

func TestClaimSameDayFails(t *testing.T) {
	now := day(t, "2026-03-01")
	state, _, err := Claim(entity.DefaultRewardState(), now)
	require.NoError(t, err)

	again, result, err := Claim(state, now)
	require.ErrorIs(t, err, apperror.ErrAlreadyClaimed)
	require.False(t, result.Success)
	require.Equal(t, 1, result.NewStreak)
	require.Equal(t, state, again)
}

func TestClaimConsecutiveDayExtendsStreak(t *testing.T) {
	state, _, err := Claim(entity.DefaultRewardState(), day(t, "2026-03-01"))
	require.NoError(t, err)

	state, result, err := Claim(state, day(t, "2026-03-02"))
	require.NoError(t, err)

	require.Equal(t, 2, result.NewStreak)
	require.Equal(t, 75, result.Reward)
	require.True(t, state.DailyBonuses[0].Claimed)
	require.True(t, state.DailyBonuses[1].Claimed)
}

func TestClaimAfterGapResetsCycle(t *testing.T) {
	state := entity.DefaultRewardState()
	var err error
	for _, date := range []string{"2026-03-01", "2026-03-02", "2026-03-03"} {
		state, _, err = Claim(state, day(t, date))
		require.NoError(t, err)
	}
	require.Equal(t, 3, state.CurrentStreak)

	// Two days skipped: the streak restarts and earlier slots are cleared.
	state, result, err := Claim(state, day(t, "2026-03-06"))
	require.NoError(t, err)

	require.Equal(t, 1, result.NewStreak)
	require.Equal(t, 50, result.Reward)
	require.True(t, state.DailyBonuses[0].Claimed)
	for _, bonus := range state.DailyBonuses[1:] {
		require.False(t, bonus.Claimed)
	}
}

func TestClaimRewardScheduleOverFullCycle(t *testing.T) {
	state := entity.DefaultRewardState()
	start := day(t, "2026-03-01")

	expected := []int{50, 75, 100, 125, 150, 175, 200 + entity.StreakBonusCoins}
	for i, want := range expected {
		var result ClaimResult
		var err error
		state, result, err = Claim(state, start.AddDate(0, 0, i))
		require.NoError(t, err)
		require.Equal(t, want, result.Reward, "day %d", i+1)
		require.Equal(t, i+1, result.NewStreak)
	}
	require.Equal(t, entity.StreakBonusCoins, state.StreakBonus)
}

func TestClaimBeyondCycleKeepsDaySevenReward(t *testing.T) {
	state := entity.DefaultRewardState()
	start := day(t, "2026-03-01")

	var result ClaimResult
	var err error
	for i := 0; i < 9; i++ {
		state, result, err = Claim(state, start.AddDate(0, 0, i))
		require.NoError(t, err)
	}

	require.Equal(t, 9, result.NewStreak)
	require.Equal(t, 200+entity.StreakBonusCoins, result.Reward)
	require.Equal(t, entity.StreakBonusCoins, state.StreakBonus)
}

func TestClaimMonthBoundary(t *testing.T) {
	state, _, err := Claim(entity.DefaultRewardState(), day(t, "2026-02-28"))
	require.NoError(t, err)

	state, result, err := Claim(state, day(t, "2026-03-01"))
	require.NoError(t, err)
	require.Equal(t, 2, result.NewStreak)
	require.Equal(t, 2, state.CurrentStreak)
}

func TestClaimDoesNotMutateInput(t *testing.T) {
	original := entity.DefaultRewardState()
	_, _, err := Claim(original, day(t, "2026-03-01"))
	require.NoError(t, err)

	require.Empty(t, original.LastClaimDate)
	require.Equal(t, 0, original.CurrentStreak)
	for _, bonus := range original.DailyBonuses {
		require.False(t, bonus.Claimed)
	}
}

func TestEffectiveStreak(t *testing.T) {
	state, _, err := Claim(entity.DefaultRewardState(), day(t, "2026-03-01"))
	require.NoError(t, err)
	state, _, err = Claim(state, day(t, "2026-03-02"))
	require.NoError(t, err)

	// Same day and the day after still count; a longer gap reads as zero
	// without touching the stored value.
	require.Equal(t, 2, EffectiveStreak(state, day(t, "2026-03-02")))
	require.Equal(t, 2, EffectiveStreak(state, day(t, "2026-03-03")))
	require.Equal(t, 0, EffectiveStreak(state, day(t, "2026-03-04")))
	require.Equal(t, 2, state.CurrentStreak)
}

func TestEffectiveStreakNeverClaimed(t *testing.T) {
	require.Equal(t, 0, EffectiveStreak(entity.DefaultRewardState(), day(t, "2026-03-01")))
}

func TestCanClaim(t *testing.T) {
	now := day(t, "2026-03-01")
	state := entity.DefaultRewardState()
	require.True(t, CanClaim(state, now))

	state, _, err := Claim(state, now)
	require.NoError(t, err)
	require.False(t, CanClaim(state, now))
	require.True(t, CanClaim(state, day(t, "2026-03-02")))
}
