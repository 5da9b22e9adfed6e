package domain

import "time"

// ProgressRecord is a daily activity log entry. Conceptually one record per
// user per day, though the store does not enforce that.
type ProgressRecord struct {
	ID               int       `json:"id"`
	UserID           int       `json:"userId"`
	Date             time.Time `json:"date"`
	WorkoutCompleted bool      `json:"workoutCompleted"`
	WorkoutID        int       `json:"workoutId,omitempty"`
	WorkoutDuration  int       `json:"workoutDuration,omitempty"`
	CaloriesBurned   int       `json:"caloriesBurned,omitempty"`
	CaloriesConsumed int       `json:"caloriesConsumed,omitempty"`
	WaterIntake      float64   `json:"waterIntake,omitempty"`
	Weight           float64   `json:"weight,omitempty"`
	Notes            string    `json:"notes,omitempty"`
}
