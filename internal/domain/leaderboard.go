package domain

import (
	"context"
	"sort"
)

const pointsPerWorkout = 50

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Workouts int    `json:"workouts"`
	Minutes  int    `json:"minutes"`
	Points   int    `json:"points"`
}

// Leaderboard ranks every non-trainer user over their entire progress
// history: points = completed workouts * 50 + total workout minutes. The
// sort is stable, so tied scores keep user insertion order.
func (s *Service) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	users, err := s.storage.ListUsers(ctx, RoleUser)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, user := range users {
		records, err := s.storage.ListProgress(ctx, user.ID, nil, nil)
		if err != nil {
			return nil, err
		}

		workouts := 0
		minutes := 0
		for _, record := range records {
			if record.WorkoutCompleted {
				workouts++
			}
			minutes += record.WorkoutDuration
		}

		city := user.City
		if city == "" {
			city = "Unknown"
		}

		entries = append(entries, LeaderboardEntry{
			ID:       user.ID,
			Name:     user.FullName,
			City:     city,
			Workouts: workouts,
			Minutes:  minutes,
			Points:   workouts*pointsPerWorkout + minutes,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	return entries, nil
}
