// Package store implements the in-memory entity store. Collections live for
// the process lifetime; filtering is a linear scan, acceptable at this scale.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"example.com/fitlife/internal/domain"
)

// Memory holds every entity collection behind a single RWMutex. IDs are
// per-entity auto-incrementing integers starting at 1.
type Memory struct {
	mu sync.RWMutex

	users       map[int]domain.User
	workouts    map[int]domain.Workout
	meals       map[int]domain.Meal
	progress    map[int]domain.ProgressRecord
	classes     map[int]domain.Class
	enrollments map[int]domain.Enrollment
	messages    map[int]domain.Message

	userSeq       int
	workoutSeq    int
	mealSeq       int
	progressSeq   int
	classSeq      int
	enrollmentSeq int
	messageSeq    int
}

var _ domain.Storage = (*Memory)(nil)

// NewMemory constructs an empty store.
func NewMemory() *Memory {
	return &Memory{
		users:       make(map[int]domain.User),
		workouts:    make(map[int]domain.Workout),
		meals:       make(map[int]domain.Meal),
		progress:    make(map[int]domain.ProgressRecord),
		classes:     make(map[int]domain.Class),
		enrollments: make(map[int]domain.Enrollment),
		messages:    make(map[int]domain.Message),
	}
}

// GetUser implements domain.Storage.
func (m *Memory) GetUser(ctx context.Context, id int) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// GetUserByUsername scans for a matching username.
func (m *Memory) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, nil
}

// GetUserByEmail scans for a matching email.
func (m *Memory) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

// CreateUser assigns the next ID and stores the user.
func (m *Memory) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.userSeq++
	user.ID = m.userSeq
	user.CreatedAt = time.Now().UTC()
	m.users[user.ID] = user
	return user, nil
}

// ListUsers returns users in insertion (ID) order, optionally filtered by role.
func (m *Memory) ListUsers(ctx context.Context, role string) ([]domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]domain.User, 0, len(m.users))
	for _, user := range m.users {
		if role != "" && user.Role != role {
			continue
		}
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// GetWorkout implements domain.Storage.
func (m *Memory) GetWorkout(ctx context.Context, id int) (*domain.Workout, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	workout, ok := m.workouts[id]
	if !ok {
		return nil, nil
	}
	return &workout, nil
}

// ListWorkouts filters by type and equipment overlap.
func (m *Memory) ListWorkouts(ctx context.Context, workoutType string, equipment []string) ([]domain.Workout, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	workouts := make([]domain.Workout, 0, len(m.workouts))
	for _, workout := range m.workouts {
		if workoutType != "" && workout.Type != workoutType {
			continue
		}
		if len(equipment) > 0 && !anyEquipment(workout.EquipmentNeeded, equipment) {
			continue
		}
		workouts = append(workouts, workout)
	}
	sort.Slice(workouts, func(i, j int) bool { return workouts[i].ID < workouts[j].ID })
	return workouts, nil
}

// CreateWorkout assigns the next ID and stores the workout.
func (m *Memory) CreateWorkout(ctx context.Context, workout domain.Workout) (domain.Workout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workoutSeq++
	workout.ID = m.workoutSeq
	workout.CreatedAt = time.Now().UTC()
	m.workouts[workout.ID] = workout
	return workout, nil
}

// GetMeal implements domain.Storage.
func (m *Memory) GetMeal(ctx context.Context, id int) (*domain.Meal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	meal, ok := m.meals[id]
	if !ok {
		return nil, nil
	}
	return &meal, nil
}

// ListMeals filters by type.
func (m *Memory) ListMeals(ctx context.Context, mealType string) ([]domain.Meal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	meals := make([]domain.Meal, 0, len(m.meals))
	for _, meal := range m.meals {
		if mealType != "" && meal.Type != mealType {
			continue
		}
		meals = append(meals, meal)
	}
	sort.Slice(meals, func(i, j int) bool { return meals[i].ID < meals[j].ID })
	return meals, nil
}

// CreateMeal assigns the next ID and stores the meal.
func (m *Memory) CreateMeal(ctx context.Context, meal domain.Meal) (domain.Meal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mealSeq++
	meal.ID = m.mealSeq
	meal.CreatedAt = time.Now().UTC()
	m.meals[meal.ID] = meal
	return meal, nil
}

// ListProgress returns the user's records sorted by date ascending, bounded
// inclusively when start/end are set.
func (m *Memory) ListProgress(ctx context.Context, userID int, start, end *time.Time) ([]domain.ProgressRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]domain.ProgressRecord, 0)
	for _, record := range m.progress {
		if record.UserID != userID {
			continue
		}
		if start != nil && record.Date.Before(*start) {
			continue
		}
		if end != nil && record.Date.After(*end) {
			continue
		}
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	sort.SliceStable(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })
	return records, nil
}

// CreateProgress assigns the next ID and stores the record.
func (m *Memory) CreateProgress(ctx context.Context, record domain.ProgressRecord) (domain.ProgressRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.progressSeq++
	record.ID = m.progressSeq
	m.progress[record.ID] = record
	return record, nil
}

// GetClass implements domain.Storage.
func (m *Memory) GetClass(ctx context.Context, id int) (*domain.Class, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	class, ok := m.classes[id]
	if !ok {
		return nil, nil
	}
	return &class, nil
}

// ListClasses returns classes sorted by start time ascending, bounded
// inclusively on start time when start/end are set.
func (m *Memory) ListClasses(ctx context.Context, classType string, start, end *time.Time) ([]domain.Class, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	classes := make([]domain.Class, 0, len(m.classes))
	for _, class := range m.classes {
		if classType != "" && class.Type != classType {
			continue
		}
		if start != nil && class.StartTime.Before(*start) {
			continue
		}
		if end != nil && class.StartTime.After(*end) {
			continue
		}
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].ID < classes[j].ID })
	sort.SliceStable(classes, func(i, j int) bool { return classes[i].StartTime.Before(classes[j].StartTime) })
	return classes, nil
}

// CreateClass assigns the next ID and stores the class with zero participants.
func (m *Memory) CreateClass(ctx context.Context, class domain.Class) (domain.Class, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.classSeq++
	class.ID = m.classSeq
	class.CurrentParticipants = 0
	class.CreatedAt = time.Now().UTC()
	m.classes[class.ID] = class
	return class, nil
}

// UpdateClassParticipants adjusts the participant count under the write lock.
// Incrementing a full class fails; decrementing floors at zero.
func (m *Memory) UpdateClassParticipants(ctx context.Context, classID int, increment bool) (*domain.Class, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	class, ok := m.classes[classID]
	if !ok {
		return nil, nil
	}

	if increment {
		if class.MaxParticipants > 0 && class.CurrentParticipants >= class.MaxParticipants {
			return nil, domain.ErrClassFull
		}
		class.CurrentParticipants++
	} else if class.CurrentParticipants > 0 {
		class.CurrentParticipants--
	}

	m.classes[classID] = class
	return &class, nil
}

// ListEnrollments filters by class and/or user; zero disables a filter.
func (m *Memory) ListEnrollments(ctx context.Context, classID, userID int) ([]domain.Enrollment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	enrollments := make([]domain.Enrollment, 0)
	for _, enrollment := range m.enrollments {
		if classID != 0 && enrollment.ClassID != classID {
			continue
		}
		if userID != 0 && enrollment.UserID != userID {
			continue
		}
		enrollments = append(enrollments, enrollment)
	}
	sort.Slice(enrollments, func(i, j int) bool { return enrollments[i].ID < enrollments[j].ID })
	return enrollments, nil
}

// CreateEnrollment assigns the next ID and stamps the enrollment time.
func (m *Memory) CreateEnrollment(ctx context.Context, enrollment domain.Enrollment) (domain.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enrollmentSeq++
	enrollment.ID = m.enrollmentSeq
	enrollment.EnrolledAt = time.Now().UTC()
	m.enrollments[enrollment.ID] = enrollment
	return enrollment, nil
}

// DeleteEnrollment removes the (classID, userID) enrollment if present.
func (m *Memory) DeleteEnrollment(ctx context.Context, classID, userID int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, enrollment := range m.enrollments {
		if enrollment.ClassID == classID && enrollment.UserID == userID {
			delete(m.enrollments, id)
			return true, nil
		}
	}
	return false, nil
}

// GetMessage implements domain.Storage.
func (m *Memory) GetMessage(ctx context.Context, id int) (*domain.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	message, ok := m.messages[id]
	if !ok {
		return nil, nil
	}
	return &message, nil
}

// ListMessages returns messages sorted by sent time ascending; zero sender
// or receiver disables that filter.
func (m *Memory) ListMessages(ctx context.Context, senderID, receiverID int) ([]domain.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	messages := make([]domain.Message, 0)
	for _, message := range m.messages {
		if senderID != 0 && message.SenderID != senderID {
			continue
		}
		if receiverID != 0 && message.ReceiverID != receiverID {
			continue
		}
		messages = append(messages, message)
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })
	sort.SliceStable(messages, func(i, j int) bool { return messages[i].SentAt.Before(messages[j].SentAt) })
	return messages, nil
}

// CreateMessage assigns the next ID, marks the message unread and stamps the
// sent time.
func (m *Memory) CreateMessage(ctx context.Context, message domain.Message) (domain.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messageSeq++
	message.ID = m.messageSeq
	message.Read = false
	message.SentAt = time.Now().UTC()
	m.messages[message.ID] = message
	return message, nil
}

// MarkMessageRead flags the message as read if it exists.
func (m *Memory) MarkMessageRead(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	message, ok := m.messages[id]
	if !ok {
		return false, nil
	}
	message.Read = true
	m.messages[id] = message
	return true, nil
}

func anyEquipment(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
