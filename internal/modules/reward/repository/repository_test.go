package repository

import (
	"context"
	"errors"
	"testing"

	"anoa.com/arcadehub/internal/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDecodeStateCurrentSchema(t *testing.T) {
	payload := []byte(`{
		"schemaVersion": 1,
		"dailyBonuses": [
			{"day":1,"reward":50,"claimed":true},
			{"day":2,"reward":75,"claimed":false},
			{"day":3,"reward":100,"claimed":false},
			{"day":4,"reward":125,"claimed":false},
			{"day":5,"reward":150,"claimed":false},
			{"day":6,"reward":175,"claimed":false},
			{"day":7,"reward":200,"claimed":false}
		],
		"achievements": [],
		"streakBonus": 0,
		"lastClaimDate": "2026-03-01",
		"currentStreak": 1
	}`)

	state, err := decodeState(payload)
	require.NoError(t, err)
	require.Equal(t, "2026-03-01", state.LastClaimDate)
	require.Equal(t, 1, state.CurrentStreak)
	require.True(t, state.DailyBonuses[0].Claimed)
	require.Empty(t, state.Achievements)
}

func TestDecodeStateMigratesLegacyBlob(t *testing.T) {
	// Pre-versioning blobs carry no schemaVersion and may predate some seed
	// achievements. Claimed days must survive the migration.
	payload := []byte(`{
		"dailyBonuses": [
			{"day":1,"reward":50,"claimed":true},
			{"day":2,"reward":75,"claimed":true}
		],
		"achievements": [
			{"id":"first_game","title":"First Steps","requirement":1,"currentProgress":1,"reward":50,"completed":true,"category":"games"}
		],
		"lastClaimDate": "2026-02-28",
		"currentStreak": 2
	}`)

	state, err := decodeState(payload)
	require.NoError(t, err)

	require.Equal(t, entity.RewardSchemaVersion, state.SchemaVersion)
	require.Len(t, state.DailyBonuses, entity.DailyBonusDays)
	require.True(t, state.DailyBonuses[0].Claimed)
	require.True(t, state.DailyBonuses[1].Claimed)
	require.False(t, state.DailyBonuses[2].Claimed)
	require.Equal(t, 200, state.DailyBonuses[6].Reward)

	require.Len(t, state.Achievements, len(entity.DefaultAchievements()))
	require.True(t, state.Achievements[0].Completed)

	require.Equal(t, "2026-02-28", state.LastClaimDate)
	require.Equal(t, 2, state.CurrentStreak)
}

func TestDecodeStateRejectsGarbage(t *testing.T) {
	_, err := decodeState([]byte("not json"))
	require.Error(t, err)
}

func TestMemoryStoreLoadDefaults(t *testing.T) {
	store := NewMemoryStore()

	state, err := store.Load(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Equal(t, entity.DefaultRewardState(), state)
}

func TestMemoryStoreUpdateRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()

	updated, err := store.Update(ctx, userID, func(state entity.RewardState) (entity.RewardState, error) {
		state.CurrentStreak = 3
		state.LastClaimDate = "2026-03-03"
		return state, nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, updated.CurrentStreak)

	loaded, err := store.Load(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 3, loaded.CurrentStreak)
	require.Equal(t, "2026-03-03", loaded.LastClaimDate)
}

func TestMemoryStoreUpdateErrorLeavesStateUntouched(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()

	err := store.Save(ctx, userID, entity.RewardState{
		SchemaVersion: entity.RewardSchemaVersion,
		CurrentStreak: 2,
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = store.Update(ctx, userID, func(state entity.RewardState) (entity.RewardState, error) {
		state.CurrentStreak = 99
		return state, boom
	})
	require.ErrorIs(t, err, boom)

	loaded, err := store.Load(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.CurrentStreak)
}

func TestMemoryStoreLoadReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Save(ctx, userID, entity.DefaultRewardState()))

	first, err := store.Load(ctx, userID)
	require.NoError(t, err)
	first.DailyBonuses[0].Claimed = true

	second, err := store.Load(ctx, userID)
	require.NoError(t, err)
	require.False(t, second.DailyBonuses[0].Claimed)
}
