package domain

import (
	"context"
	"time"
)

// Storage captures persistence operations over the entity collections. Get
// methods return (nil, nil) when the entity does not exist; the service maps
// that to the sentinel errors.
type Storage interface {
	GetUser(ctx context.Context, id int) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, user User) (User, error)
	// ListUsers returns users in insertion order, optionally filtered by role.
	ListUsers(ctx context.Context, role string) ([]User, error)

	GetWorkout(ctx context.Context, id int) (*Workout, error)
	// ListWorkouts filters by type and by equipment overlap (a workout
	// matches when any requested equipment item appears in its list).
	ListWorkouts(ctx context.Context, workoutType string, equipment []string) ([]Workout, error)
	CreateWorkout(ctx context.Context, workout Workout) (Workout, error)

	GetMeal(ctx context.Context, id int) (*Meal, error)
	ListMeals(ctx context.Context, mealType string) ([]Meal, error)
	CreateMeal(ctx context.Context, meal Meal) (Meal, error)

	// ListProgress returns the user's records sorted by date ascending.
	// Start and end bounds are inclusive; nil disables the bound.
	ListProgress(ctx context.Context, userID int, start, end *time.Time) ([]ProgressRecord, error)
	CreateProgress(ctx context.Context, record ProgressRecord) (ProgressRecord, error)

	GetClass(ctx context.Context, id int) (*Class, error)
	// ListClasses returns classes sorted by start time ascending.
	ListClasses(ctx context.Context, classType string, start, end *time.Time) ([]Class, error)
	CreateClass(ctx context.Context, class Class) (Class, error)
	// UpdateClassParticipants adjusts the participant count. Incrementing a
	// class at capacity returns ErrClassFull; decrementing floors at zero.
	UpdateClassParticipants(ctx context.Context, classID int, increment bool) (*Class, error)

	// ListEnrollments filters by class and/or user; zero disables a filter.
	ListEnrollments(ctx context.Context, classID, userID int) ([]Enrollment, error)
	CreateEnrollment(ctx context.Context, enrollment Enrollment) (Enrollment, error)
	// DeleteEnrollment removes the (classID, userID) enrollment, reporting
	// whether one existed.
	DeleteEnrollment(ctx context.Context, classID, userID int) (bool, error)

	GetMessage(ctx context.Context, id int) (*Message, error)
	// ListMessages returns messages sorted by sent time ascending.
	ListMessages(ctx context.Context, senderID, receiverID int) ([]Message, error)
	CreateMessage(ctx context.Context, message Message) (Message, error)
	// MarkMessageRead flags the message, reporting whether it existed.
	MarkMessageRead(ctx context.Context, id int) (bool, error)
}
