package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"anoa.com/arcadehub/internal/entity"
	"anoa.com/arcadehub/internal/modules/game/dto"
	"anoa.com/arcadehub/internal/modules/game/repository"
	notifService "anoa.com/arcadehub/internal/modules/notification/service"
	rewardService "anoa.com/arcadehub/internal/modules/reward/service"
	searchService "anoa.com/arcadehub/internal/modules/search/service"
	userService "anoa.com/arcadehub/internal/modules/user/service"
	"github.com/google/uuid"
)

// GameService turns a game-completion event into every progression side
// effect: the append-only record, the profile totals, and achievement
// progress for the games/coins/level categories.
type GameService interface {
	Complete(ctx context.Context, userID uuid.UUID, input dto.CompleteGameInput) (*dto.GameResult, error)
	History(ctx context.Context, userID uuid.UUID) ([]entity.GameRecord, error)
}

type gameService struct {
	repo     repository.GameRepository
	users    userService.AuthService
	rewards  rewardService.RewardService
	notifier notifService.NotificationService
	search   searchService.PlayerSearchService
}

func NewGameService(
	repo repository.GameRepository,
	users userService.AuthService,
	rewards rewardService.RewardService,
	notifier notifService.NotificationService,
	search searchService.PlayerSearchService,
) GameService {
	return &gameService{
		repo:     repo,
		users:    users,
		rewards:  rewards,
		notifier: notifier,
		search:   search,
	}
}

func (s *gameService) Complete(ctx context.Context, userID uuid.UUID, input dto.CompleteGameInput) (*dto.GameResult, error) {
	record := &entity.GameRecord{
		UserID:      userID,
		GameType:    input.GameType,
		Score:       input.Score,
		CoinsEarned: input.CoinsEarned,
		XPEarned:    input.XPEarned,
		Won:         input.Won,
		PlayedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	user, leveledUp, err := s.users.ApplyGameResult(ctx, userID, input.CoinsEarned, input.XPEarned, input.Score)
	if err != nil {
		return nil, err
	}

	var completed []entity.Achievement
	for _, update := range []struct {
		category string
		value    int
	}{
		{entity.CategoryGames, user.GamesPlayed},
		{entity.CategoryCoins, user.Coins},
		{entity.CategoryLevel, user.Level},
	} {
		done, err := s.rewards.UpdateProgress(ctx, userID, update.category, update.value)
		if err != nil {
			return nil, err
		}
		completed = append(completed, done...)
	}

	if leveledUp && s.notifier != nil {
		message := fmt.Sprintf("Level up! You reached level %d (+%d coins)", user.Level, entity.LevelUpBonus)
		if err := s.notifier.Notify(ctx, userID, entity.NotificationLevelUp, message); err != nil {
			log.Printf("Failed to send level up notification to user %s: %v", userID, err)
		}
	}

	s.reindexPlayer(ctx, user)

	return &dto.GameResult{
		Record:                record,
		User:                  user,
		LeveledUp:             leveledUp,
		CompletedAchievements: completed,
	}, nil
}

func (s *gameService) History(ctx context.Context, userID uuid.UUID) ([]entity.GameRecord, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *gameService) reindexPlayer(ctx context.Context, user *entity.User) {
	if s.search == nil {
		return
	}

	gamesWon, err := s.repo.CountWonByUserID(ctx, user.ID)
	if err != nil {
		log.Printf("Failed to count wins for user %s: %v", user.ID, err)
		return
	}

	doc := searchService.PlayerDocument{
		DocID:       "user-" + user.ID.String(),
		UserID:      user.ID.String(),
		Username:    user.Username,
		TotalCoins:  user.Coins,
		Level:       user.Level,
		GamesPlayed: user.GamesPlayed,
		GamesWon:    int(gamesWon),
	}
	if err := s.search.IndexPlayer(doc); err != nil {
		log.Printf("Failed to reindex player %s: %v", user.Username, err)
	}
}
