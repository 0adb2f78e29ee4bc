package service

import "anoa.com/arcadehub/internal/modules/leaderboard/dto"

// MergeRanked inserts the live player into the reference population and
// assigns contiguous 1-based ranks. The reference slice must already be
// sorted descending by total coins.
//
// Ties go to the live player: insertion happens at the first reference entry
// with strictly fewer coins, so an equal-coin live entry lands ahead of it.
// Ranks are positional, never skipped for ties.
func MergeRanked(reference []dto.PlayerRankEntry, live *dto.PlayerRankEntry) []dto.PlayerRankEntry {
	merged := make([]dto.PlayerRankEntry, 0, len(reference)+1)

	if live == nil {
		merged = append(merged, reference...)
	} else {
		inserted := false
		for _, entry := range reference {
			if !inserted && entry.TotalCoins < live.TotalCoins {
				merged = append(merged, *live)
				inserted = true
			}
			merged = append(merged, entry)
		}
		if !inserted {
			merged = append(merged, *live)
		}
	}

	for i := range merged {
		merged[i].Rank = i + 1
	}
	return merged
}
