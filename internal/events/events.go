// Package events defines the domain event payloads and their publisher.
package events

import "time"

// Event types carried in the event_type message header.
const (
	TypeProgressRecorded  = "progress.recorded"
	TypeEnrollmentCreated = "class.enrollment_created"
)

// ProgressRecorded is emitted when a user logs a daily progress record.
type ProgressRecorded struct {
	RecordID         int       `json:"record_id"`
	UserID           int       `json:"user_id"`
	Date             time.Time `json:"date"`
	WorkoutCompleted bool      `json:"workout_completed"`
	WorkoutDuration  int       `json:"workout_duration"`
	CaloriesBurned   int       `json:"calories_burned"`
}

// EnrollmentCreated is emitted when a user signs up for a class.
type EnrollmentCreated struct {
	EnrollmentID int       `json:"enrollment_id"`
	ClassID      int       `json:"class_id"`
	UserID       int       `json:"user_id"`
	EnrolledAt   time.Time `json:"enrolled_at"`
}
