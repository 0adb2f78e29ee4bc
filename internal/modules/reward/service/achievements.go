package service

import "anoa.com/arcadehub/internal/entity"

// ApplyProgress overwrites the progress of every incomplete achievement in
// category with value and marks those that reached their requirement as
// completed. The newly completed ones are returned.
//
// Progress is an absolute overwrite, not max(old, new): that is the stored
// contract, and it means a later lower report can regress progress before
// completion. Completion itself is sticky and never reverts.
func ApplyProgress(state *entity.RewardState, category string, value int) []entity.Achievement {
	var completed []entity.Achievement

	for i := range state.Achievements {
		achievement := &state.Achievements[i]
		if achievement.Category != category || achievement.Completed {
			continue
		}

		achievement.CurrentProgress = value
		if achievement.CurrentProgress >= achievement.Requirement {
			achievement.Completed = true
			completed = append(completed, *achievement)
		}
	}

	return completed
}
