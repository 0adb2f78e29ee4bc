package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"anoa.com/arcadehub/internal/entity"
	notifService "anoa.com/arcadehub/internal/modules/notification/service"
	"anoa.com/arcadehub/internal/modules/reward/dto"
	"anoa.com/arcadehub/internal/modules/reward/repository"
	userRepo "anoa.com/arcadehub/internal/modules/user/repository"
	"anoa.com/arcadehub/pkg/apperror"
	"github.com/google/uuid"
)

// RewardService owns the per-player reward blob: the daily-bonus claim cycle
// and achievement progress. Claimed rewards and achievement payouts are
// credited straight to the player's coin balance.
type RewardService interface {
	GetDailyBonuses(ctx context.Context, userID uuid.UUID) ([]entity.DailyBonus, error)
	ClaimDailyBonus(ctx context.Context, userID uuid.UUID, now time.Time) (*dto.ClaimResponse, error)
	GetStreak(ctx context.Context, userID uuid.UUID, now time.Time) (*dto.StreakResponse, error)
	GetAchievements(ctx context.Context, userID uuid.UUID) ([]entity.Achievement, error)
	// UpdateProgress overwrites progress for one category and returns the
	// achievements that completed because of it.
	UpdateProgress(ctx context.Context, userID uuid.UUID, category string, value int) ([]entity.Achievement, error)
}

type rewardService struct {
	store    repository.Store
	users    userRepo.UserRepository
	notifier notifService.NotificationService
}

func NewRewardService(store repository.Store, users userRepo.UserRepository, notifier notifService.NotificationService) RewardService {
	return &rewardService{
		store:    store,
		users:    users,
		notifier: notifier,
	}
}

func (s *rewardService) GetDailyBonuses(ctx context.Context, userID uuid.UUID) ([]entity.DailyBonus, error) {
	state, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return state.DailyBonuses, nil
}

func (s *rewardService) ClaimDailyBonus(ctx context.Context, userID uuid.UUID, now time.Time) (*dto.ClaimResponse, error) {
	var result ClaimResult
	var completed []entity.Achievement

	state, err := s.store.Update(ctx, userID, func(state entity.RewardState) (entity.RewardState, error) {
		next, res, err := Claim(state, now)
		if err != nil {
			return entity.RewardState{}, err
		}
		result = res
		// Streak achievements ride along in the same atomic write.
		completed = ApplyProgress(&next, entity.CategoryStreak, res.NewStreak)
		return next, nil
	})
	if err != nil {
		if errors.Is(err, apperror.ErrAlreadyClaimed) {
			current, loadErr := s.store.Load(ctx, userID)
			if loadErr != nil {
				return nil, loadErr
			}
			return &dto.ClaimResponse{NewStreak: current.CurrentStreak}, err
		}
		return nil, err
	}

	payout := result.Reward
	for _, achievement := range completed {
		payout += achievement.Reward
	}
	if err := s.users.AddCoins(ctx, userID, payout); err != nil {
		return nil, err
	}

	s.notifyCompleted(ctx, userID, completed)
	if result.NewStreak == entity.DailyBonusDays {
		s.notify(ctx, userID, entity.NotificationStreakMilestone,
			fmt.Sprintf("You reached a %d-day streak! Every claim now pays an extra %d coins.",
				entity.DailyBonusDays, entity.StreakBonusCoins))
	}

	return &dto.ClaimResponse{
		Success:               true,
		Reward:                result.Reward,
		NewStreak:             result.NewStreak,
		StreakBonus:           state.StreakBonus,
		CompletedAchievements: completed,
	}, nil
}

func (s *rewardService) GetStreak(ctx context.Context, userID uuid.UUID, now time.Time) (*dto.StreakResponse, error) {
	state, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.StreakResponse{
		CurrentStreak: EffectiveStreak(state, now),
		CanClaim:      CanClaim(state, now),
	}, nil
}

func (s *rewardService) GetAchievements(ctx context.Context, userID uuid.UUID) ([]entity.Achievement, error) {
	state, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return state.Achievements, nil
}

func (s *rewardService) UpdateProgress(ctx context.Context, userID uuid.UUID, category string, value int) ([]entity.Achievement, error) {
	var completed []entity.Achievement

	_, err := s.store.Update(ctx, userID, func(state entity.RewardState) (entity.RewardState, error) {
		completed = ApplyProgress(&state, category, value)
		return state, nil
	})
	if err != nil {
		return nil, err
	}

	if len(completed) > 0 {
		payout := 0
		for _, achievement := range completed {
			payout += achievement.Reward
		}
		if err := s.users.AddCoins(ctx, userID, payout); err != nil {
			return nil, err
		}
		s.notifyCompleted(ctx, userID, completed)
	}

	return completed, nil
}

func (s *rewardService) notifyCompleted(ctx context.Context, userID uuid.UUID, completed []entity.Achievement) {
	for _, achievement := range completed {
		s.notify(ctx, userID, entity.NotificationAchievement,
			fmt.Sprintf("Achievement unlocked: %s (+%d coins)", achievement.Title, achievement.Reward))
	}
}

func (s *rewardService) notify(ctx context.Context, userID uuid.UUID, notificationType, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, userID, notificationType, message); err != nil {
		log.Printf("Failed to send %s notification to user %s: %v", notificationType, userID, err)
	}
}
