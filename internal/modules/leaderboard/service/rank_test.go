package service

import (
	"testing"

	"anoa.com/arcadehub/internal/modules/leaderboard/dto"
	"github.com/stretchr/testify/require"
)

func entry(username string, coins int) dto.PlayerRankEntry {
	return dto.PlayerRankEntry{Username: username, TotalCoins: coins}
}

func usernames(board []dto.PlayerRankEntry) []string {
	names := make([]string, 0, len(board))
	for _, e := range board {
		names = append(names, e.Username)
	}
	return names
}

func requireContiguousRanks(t *testing.T, board []dto.PlayerRankEntry) {
	t.Helper()
	for i, e := range board {
		require.Equal(t, i+1, e.Rank)
	}
}

func TestMergeRankedInsertsByCoins(t *testing.T) {
	reference := []dto.PlayerRankEntry{
		entry("Alpha", 1000),
		entry("Bravo", 500),
	}
	live := entry("Charlie", 700)

	board := MergeRanked(reference, &live)

	require.Equal(t, []string{"Alpha", "Charlie", "Bravo"}, usernames(board))
	requireContiguousRanks(t, board)
}

func TestMergeRankedNilLive(t *testing.T) {
	reference := []dto.PlayerRankEntry{
		entry("Alpha", 1000),
		entry("Bravo", 500),
	}

	board := MergeRanked(reference, nil)

	require.Equal(t, []string{"Alpha", "Bravo"}, usernames(board))
	requireContiguousRanks(t, board)
}

func TestMergeRankedTieFavorsLive(t *testing.T) {
	reference := []dto.PlayerRankEntry{
		entry("Alpha", 1000),
		entry("Bravo", 700),
		entry("Delta", 300),
	}
	live := entry("Charlie", 700)

	board := MergeRanked(reference, &live)

	require.Equal(t, []string{"Alpha", "Charlie", "Bravo", "Delta"}, usernames(board))
	requireContiguousRanks(t, board)
}

func TestMergeRankedLiveAtTop(t *testing.T) {
	reference := []dto.PlayerRankEntry{
		entry("Alpha", 1000),
	}
	live := entry("Charlie", 2000)

	board := MergeRanked(reference, &live)

	require.Equal(t, []string{"Charlie", "Alpha"}, usernames(board))
	require.Equal(t, 1, board[0].Rank)
}

func TestMergeRankedLiveAtBottom(t *testing.T) {
	reference := []dto.PlayerRankEntry{
		entry("Alpha", 1000),
		entry("Bravo", 500),
	}
	live := entry("Charlie", 10)

	board := MergeRanked(reference, &live)

	require.Equal(t, []string{"Alpha", "Bravo", "Charlie"}, usernames(board))
	require.Equal(t, 3, board[2].Rank)
}

func TestMergeRankedEmptyReference(t *testing.T) {
	live := entry("Charlie", 100)

	board := MergeRanked(nil, &live)

	require.Len(t, board, 1)
	require.Equal(t, "Charlie", board[0].Username)
	require.Equal(t, 1, board[0].Rank)
}

func TestMergeRankedDoesNotMutateReference(t *testing.T) {
	reference := []dto.PlayerRankEntry{
		entry("Alpha", 1000),
		entry("Bravo", 500),
	}
	live := entry("Charlie", 700)

	MergeRanked(reference, &live)

	require.Equal(t, 0, reference[0].Rank)
	require.Equal(t, 0, reference[1].Rank)
}
