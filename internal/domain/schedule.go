package domain

import "time"

// Class is a scheduled group session led by a trainer. MaxParticipants of
// zero means unlimited capacity.
type Class struct {
	ID                  int       `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description,omitempty"`
	TrainerID           int       `json:"trainerId"`
	StartTime           time.Time `json:"startTime"`
	Duration            int       `json:"duration"`
	MaxParticipants     int       `json:"maxParticipants,omitempty"`
	CurrentParticipants int       `json:"currentParticipants"`
	Type                string    `json:"type"`
	CreatedAt           time.Time `json:"createdAt"`
}

// Enrollment links a user to a class. Uniqueness of (classId, userId) is
// checked by the service, not the store.
type Enrollment struct {
	ID         int       `json:"id"`
	ClassID    int       `json:"classId"`
	UserID     int       `json:"userId"`
	EnrolledAt time.Time `json:"enrolledAt"`
}
