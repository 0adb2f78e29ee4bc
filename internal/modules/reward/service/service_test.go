package service

import (
	"context"
	"testing"

	"anoa.com/arcadehub/internal/entity"
	"anoa.com/arcadehub/internal/modules/reward/dto"
	"anoa.com/arcadehub/internal/modules/reward/repository"
	"anoa.com/arcadehub/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	coins map[uuid.UUID]int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{coins: make(map[uuid.UUID]int)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (f *fakeUserRepo) AddCoins(ctx context.Context, id uuid.UUID, amount int) error {
	f.coins[id] += amount
	return nil
}
func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type recordedNotification struct {
	userID  uuid.UUID
	kind    string
	message string
}

type fakeNotifier struct {
	sent []recordedNotification
}

func (f *fakeNotifier) Notify(ctx context.Context, userID uuid.UUID, notificationType, message string) error {
	f.sent = append(f.sent, recordedNotification{userID: userID, kind: notificationType, message: message})
	return nil
}
func (f *fakeNotifier) GetNotifications(userID uuid.UUID, limit, offset int) ([]entity.Notification, error) {
	return nil, nil
}
func (f *fakeNotifier) MarkAsRead(id uuid.UUID) error               { return nil }
func (f *fakeNotifier) MarkAllAsRead(userID uuid.UUID) error        { return nil }
func (f *fakeNotifier) UnreadCount(userID uuid.UUID) (int64, error) { return 0, nil }

func newTestRewardService() (RewardService, *fakeUserRepo, *fakeNotifier) {
	users := newFakeUserRepo()
	notifier := &fakeNotifier{}
	svc := NewRewardService(repository.NewMemoryStore(), users, notifier)
	return svc, users, notifier
}

func TestClaimDailyBonusCreditsCoins(t *testing.T) {
	svc, users, _ := newTestRewardService()
	ctx := context.Background()
	userID := uuid.New()

	resp, err := svc.ClaimDailyBonus(ctx, userID, day(t, "2026-03-01"))
	require.NoError(t, err)

	require.True(t, resp.Success)
	require.Equal(t, 50, resp.Reward)
	require.Equal(t, 1, resp.NewStreak)
	require.Equal(t, 50, users.coins[userID])
}

func TestClaimDailyBonusSecondClaimSameDay(t *testing.T) {
	svc, users, _ := newTestRewardService()
	ctx := context.Background()
	userID := uuid.New()
	now := day(t, "2026-03-01")

	_, err := svc.ClaimDailyBonus(ctx, userID, now)
	require.NoError(t, err)

	resp, err := svc.ClaimDailyBonus(ctx, userID, now)
	require.ErrorIs(t, err, apperror.ErrAlreadyClaimed)
	require.NotNil(t, resp)
	require.False(t, resp.Success)
	require.Equal(t, 1, resp.NewStreak)
	require.Equal(t, 50, users.coins[userID], "rejected claim must not pay out")
}

func TestClaimDailyBonusSevenDayStreak(t *testing.T) {
	svc, users, notifier := newTestRewardService()
	ctx := context.Background()
	userID := uuid.New()
	start := day(t, "2026-03-01")

	var resp *dto.ClaimResponse
	for i := 0; i < entity.DailyBonusDays; i++ {
		var err error
		resp, err = svc.ClaimDailyBonus(ctx, userID, start.AddDate(0, 0, i))
		require.NoError(t, err)
	}

	// Day 7: slot reward 200, flat streak bonus 100, streak_warrior payout 300.
	require.Equal(t, 300, resp.Reward)
	require.Len(t, resp.CompletedAchievements, 1)
	require.Equal(t, "streak_warrior", resp.CompletedAchievements[0].ID)

	claims := 50 + 75 + 100 + 125 + 150 + 175 + 300
	require.Equal(t, claims+300, users.coins[userID])

	kinds := make([]string, 0, len(notifier.sent))
	for _, n := range notifier.sent {
		kinds = append(kinds, n.kind)
	}
	require.Contains(t, kinds, entity.NotificationAchievement)
	require.Contains(t, kinds, entity.NotificationStreakMilestone)
}

func TestGetStreakProjection(t *testing.T) {
	svc, _, _ := newTestRewardService()
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.ClaimDailyBonus(ctx, userID, day(t, "2026-03-01"))
	require.NoError(t, err)

	streak, err := svc.GetStreak(ctx, userID, day(t, "2026-03-01"))
	require.NoError(t, err)
	require.Equal(t, 1, streak.CurrentStreak)
	require.False(t, streak.CanClaim)

	streak, err = svc.GetStreak(ctx, userID, day(t, "2026-03-02"))
	require.NoError(t, err)
	require.Equal(t, 1, streak.CurrentStreak)
	require.True(t, streak.CanClaim)

	// After a gap the projection reads zero while the claim is still open.
	streak, err = svc.GetStreak(ctx, userID, day(t, "2026-03-05"))
	require.NoError(t, err)
	require.Equal(t, 0, streak.CurrentStreak)
	require.True(t, streak.CanClaim)
}

func TestUpdateProgressPaysAndNotifies(t *testing.T) {
	svc, users, notifier := newTestRewardService()
	ctx := context.Background()
	userID := uuid.New()

	completed, err := svc.UpdateProgress(ctx, userID, entity.CategoryGames, 1)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	require.Equal(t, "first_game", completed[0].ID)
	require.Equal(t, 50, users.coins[userID])
	require.Len(t, notifier.sent, 1)
	require.Equal(t, entity.NotificationAchievement, notifier.sent[0].kind)

	// No re-completion, no double payout.
	completed, err = svc.UpdateProgress(ctx, userID, entity.CategoryGames, 2)
	require.NoError(t, err)
	require.Empty(t, completed)
	require.Equal(t, 50, users.coins[userID])
}

func TestGetDailyBonusesDefaults(t *testing.T) {
	svc, _, _ := newTestRewardService()

	bonuses, err := svc.GetDailyBonuses(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, bonuses, entity.DailyBonusDays)
	require.Equal(t, 50, bonuses[0].Reward)
	require.Equal(t, 200, bonuses[6].Reward)
	for _, bonus := range bonuses {
		require.False(t, bonus.Claimed)
	}
}

func TestStatesAreIsolatedPerUser(t *testing.T) {
	svc, _, _ := newTestRewardService()
	ctx := context.Background()
	now := day(t, "2026-03-01")

	first := uuid.New()
	second := uuid.New()

	_, err := svc.ClaimDailyBonus(ctx, first, now)
	require.NoError(t, err)

	streak, err := svc.GetStreak(ctx, second, now)
	require.NoError(t, err)
	require.Equal(t, 0, streak.CurrentStreak)
	require.True(t, streak.CanClaim)
}
