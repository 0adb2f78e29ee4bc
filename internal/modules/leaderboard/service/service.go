package service

import (
	"context"
	"errors"

	"anoa.com/arcadehub/internal/entity"
	gameRepo "anoa.com/arcadehub/internal/modules/game/repository"
	"anoa.com/arcadehub/internal/modules/leaderboard/dto"
	leaderboardRepo "anoa.com/arcadehub/internal/modules/leaderboard/repository"
	statsDto "anoa.com/arcadehub/internal/modules/stats/dto"
	userRepo "anoa.com/arcadehub/internal/modules/user/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaderboardService interface {
	// GetLeaderboard merges the live player into the reference snapshot.
	// A nil userID (or an unknown one) yields the reference-only board.
	GetLeaderboard(ctx context.Context, userID *uuid.UUID) ([]dto.PlayerRankEntry, error)
	// GetUserRank returns the merged rank for the player, or 0 when the
	// player doesn't appear on the board.
	GetUserRank(ctx context.Context, userID uuid.UUID) (int, error)
}

type leaderboardService struct {
	reference leaderboardRepo.ReferenceRepository
	users     userRepo.UserRepository
	games     gameRepo.GameRepository
}

func NewLeaderboardService(
	reference leaderboardRepo.ReferenceRepository,
	users userRepo.UserRepository,
	games gameRepo.GameRepository,
) LeaderboardService {
	return &leaderboardService{
		reference: reference,
		users:     users,
		games:     games,
	}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context, userID *uuid.UUID) ([]dto.PlayerRankEntry, error) {
	snapshot, err := s.reference.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	reference := make([]dto.PlayerRankEntry, 0, len(snapshot))
	for _, player := range snapshot {
		reference = append(reference, referenceEntry(player))
	}

	var live *dto.PlayerRankEntry
	if userID != nil {
		live, err = s.liveEntry(ctx, *userID)
		if err != nil {
			return nil, err
		}
	}

	return MergeRanked(reference, live), nil
}

func (s *leaderboardService) GetUserRank(ctx context.Context, userID uuid.UUID) (int, error) {
	board, err := s.GetLeaderboard(ctx, &userID)
	if err != nil {
		return 0, err
	}

	id := userID.String()
	for _, entry := range board {
		if entry.UserID == id {
			return entry.Rank, nil
		}
	}
	return 0, nil
}

// liveEntry builds the live player's row from the profile totals plus the
// session log. A missing profile is not an error: the board simply stays
// reference-only.
func (s *leaderboardService) liveEntry(ctx context.Context, userID uuid.UUID) (*dto.PlayerRankEntry, error) {
	user, err := s.users.FindByID(ctx, userID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	records, err := s.games.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	gamesWon := 0
	scoreSum := 0
	for _, record := range records {
		if record.Won {
			gamesWon++
		}
		scoreSum += record.Score
	}

	entry := &dto.PlayerRankEntry{
		UserID:      user.ID.String(),
		Username:    user.Username,
		TotalCoins:  user.Coins,
		Level:       user.Level,
		GamesPlayed: user.GamesPlayed,
		GamesWon:    gamesWon,
		TotalScore:  user.TotalScore,
	}
	if user.GamesPlayed > 0 {
		entry.WinRate = statsDto.RoundRate(gamesWon, user.GamesPlayed)
		entry.AverageScore = statsDto.RoundDiv(scoreSum, user.GamesPlayed)
	}

	return entry, nil
}

func referenceEntry(player entity.ReferencePlayer) dto.PlayerRankEntry {
	entry := dto.PlayerRankEntry{
		Username:    player.Username,
		TotalCoins:  player.TotalCoins,
		Level:       player.Level,
		GamesPlayed: player.GamesPlayed,
		GamesWon:    player.GamesWon,
		TotalScore:  player.TotalScore,
	}
	if player.GamesPlayed > 0 {
		entry.WinRate = statsDto.RoundRate(player.GamesWon, player.GamesPlayed)
		entry.AverageScore = statsDto.RoundDiv(player.TotalScore, player.GamesPlayed)
	}
	return entry
}
