package service

import (
	"time"

	"anoa.com/arcadehub/internal/entity"
	"anoa.com/arcadehub/pkg/apperror"
)

// DayFormat is how calendar days are stored in the reward blob. Dates are
// always UTC so continuity checks don't depend on server locale or timezone.
const DayFormat = "2006-01-02"

// ClaimResult is what a successful (or rejected) claim reports back.
type ClaimResult struct {
	Success   bool `json:"success"`
	Reward    int  `json:"reward"`
	NewStreak int  `json:"new_streak"`
}

// FormatDay renders t as a UTC calendar day.
func FormatDay(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// dayIndex converts a stored calendar date to days since the Unix epoch.
// Empty or malformed dates yield ok=false and are treated as "never claimed".
func dayIndex(date string) (int64, bool) {
	t, err := time.Parse(DayFormat, date)
	if err != nil {
		return 0, false
	}
	return t.Unix() / 86400, true
}

// Claim runs the daily-bonus state machine on a copy of state and returns the
// new state. The transition:
//
//   - claiming twice on the same day fails with ErrAlreadyClaimed
//   - a claim on the day after the last one extends the streak
//   - any longer gap starts a new streak and resets the 7-slot cycle
//   - streaks past day 7 keep re-claiming the day-7 slot, plus a flat bonus
func Claim(state entity.RewardState, now time.Time) (entity.RewardState, ClaimResult, error) {
	today := FormatDay(now)
	todayIdx, _ := dayIndex(today)

	if state.LastClaimDate == today {
		return state, ClaimResult{NewStreak: state.CurrentStreak}, apperror.ErrAlreadyClaimed
	}

	lastIdx, hasLast := dayIndex(state.LastClaimDate)
	isConsecutive := hasLast && lastIdx == todayIdx-1

	newStreak := 1
	if isConsecutive {
		newStreak = state.CurrentStreak + 1
	}

	state.DailyBonuses = append([]entity.DailyBonus(nil), state.DailyBonuses...)

	// A broken streak starts a fresh cycle.
	if newStreak == 1 && state.CurrentStreak > 0 {
		for i := range state.DailyBonuses {
			state.DailyBonuses[i].Claimed = false
		}
	}

	slot := newStreak - 1
	if slot > entity.DailyBonusDays-1 {
		slot = entity.DailyBonusDays - 1
	}

	state.StreakBonus = 0
	if newStreak >= entity.DailyBonusDays {
		state.StreakBonus = entity.StreakBonusCoins
	}

	state.DailyBonuses[slot].Claimed = true
	state.LastClaimDate = today
	state.CurrentStreak = newStreak

	return state, ClaimResult{
		Success:   true,
		Reward:    state.DailyBonuses[slot].Reward + state.StreakBonus,
		NewStreak: newStreak,
	}, nil
}

// EffectiveStreak is the read-time projection of the streak: the stored value
// counts only while the last claim was today or yesterday. It never mutates
// the stored state, so an unclaimed broken streak still resets lazily on the
// next claim.
func EffectiveStreak(state entity.RewardState, now time.Time) int {
	todayIdx, _ := dayIndex(FormatDay(now))
	lastIdx, hasLast := dayIndex(state.LastClaimDate)

	if hasLast && (lastIdx == todayIdx || lastIdx == todayIdx-1) {
		return state.CurrentStreak
	}
	return 0
}

// CanClaim reports whether a claim today would succeed.
func CanClaim(state entity.RewardState, now time.Time) bool {
	return state.LastClaimDate != FormatDay(now)
}
