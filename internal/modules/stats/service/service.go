package service

import (
	"context"

	"anoa.com/arcadehub/internal/entity"
	gameRepo "anoa.com/arcadehub/internal/modules/game/repository"
	"anoa.com/arcadehub/internal/modules/stats/dto"
	"github.com/google/uuid"
)

// RecentGamesLimit is how many sessions the recent-games view keeps.
const RecentGamesLimit = 10

type StatService interface {
	// Aggregate derives summary statistics from a session log in one pass.
	// Pure: it never touches storage and empty input yields zeroed stats.
	Aggregate(records []entity.GameRecord) dto.AggregateStats
	ForUser(ctx context.Context, userID uuid.UUID) (dto.AggregateStats, error)
}

type statService struct {
	games gameRepo.GameRepository
}

func NewStatService(games gameRepo.GameRepository) StatService {
	return &statService{games: games}
}

func (s *statService) Aggregate(records []entity.GameRecord) dto.AggregateStats {
	stats := dto.AggregateStats{
		TotalGames:    len(records),
		GameTypeStats: make(map[string]dto.GameTypeStat),
	}

	totalScore := 0
	for _, record := range records {
		totalScore += record.Score
		stats.TotalCoins += record.CoinsEarned
		stats.TotalXP += record.XPEarned

		byType := stats.GameTypeStats[record.GameType]
		byType.Played++
		byType.TotalScore += record.Score
		if record.Won {
			stats.GamesWon++
			byType.Won++
		}
		stats.GameTypeStats[record.GameType] = byType
	}

	if stats.TotalGames > 0 {
		stats.WinRate = dto.RoundRate(stats.GamesWon, stats.TotalGames)
		stats.AverageScore = dto.RoundDiv(totalScore, stats.TotalGames)
	}

	stats.RecentGames = recentGames(records, RecentGamesLimit)
	return stats
}

func (s *statService) ForUser(ctx context.Context, userID uuid.UUID) (dto.AggregateStats, error) {
	records, err := s.games.FindByUserID(ctx, userID)
	if err != nil {
		return dto.AggregateStats{}, err
	}
	return s.Aggregate(records), nil
}

// recentGames returns the last n records newest-first without mutating the log.
func recentGames(records []entity.GameRecord, n int) []entity.GameRecord {
	if len(records) < n {
		n = len(records)
	}

	recent := make([]entity.GameRecord, 0, n)
	for i := len(records) - 1; i >= len(records)-n; i-- {
		recent = append(recent, records[i])
	}
	return recent
}
