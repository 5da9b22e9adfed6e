package domain

import (
	"context"
	"log"
	"sort"
	"time"

	"example.com/fitlife/internal/events"
	"example.com/fitlife/internal/observability"
)

// Service orchestrates entity workflows over the Storage contract.
type Service struct {
	storage Storage
	events  events.Publisher
	now     func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the time source. Used by tests to pin "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService constructs a Service. A nil publisher disables event emission.
func NewService(storage Storage, publisher events.Publisher, opts ...Option) *Service {
	s := &Service{
		storage: storage,
		events:  publisher,
		now:     time.Now,
	}
	if s.events == nil {
		s.events = events.NoopPublisher{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterInput captures the payload for account creation.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	FullName string
	City     string
	Role     string
}

// Register creates a new account after enforcing username/email uniqueness.
func (s *Service) Register(ctx context.Context, input RegisterInput) (User, error) {
	if existing, err := s.storage.GetUserByUsername(ctx, input.Username); err != nil {
		return User{}, err
	} else if existing != nil {
		return User{}, ErrUsernameTaken
	}
	if existing, err := s.storage.GetUserByEmail(ctx, input.Email); err != nil {
		return User{}, err
	} else if existing != nil {
		return User{}, ErrEmailTaken
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return User{}, err
	}

	role := input.Role
	if role == "" {
		role = RoleUser
	}

	user, err := s.storage.CreateUser(ctx, User{
		Username:     input.Username,
		PasswordHash: hash,
		Email:        input.Email,
		FullName:     input.FullName,
		City:         input.City,
		Role:         role,
	})
	if err != nil {
		return User{}, err
	}

	observability.RecordRegistration()
	return user, nil
}

// Authenticate verifies credentials. Unknown usernames and wrong passwords
// both yield ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		return User{}, err
	}
	if user == nil || !CheckPassword(user.PasswordHash, password) {
		observability.RecordLogin(false)
		return User{}, ErrInvalidCredentials
	}
	observability.RecordLogin(true)
	return *user, nil
}

// GetUser fetches a user by ID.
func (s *Service) GetUser(ctx context.Context, id int) (*User, error) {
	user, err := s.storage.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListUsers returns users, optionally filtered by role.
func (s *Service) ListUsers(ctx context.Context, role string) ([]User, error) {
	return s.storage.ListUsers(ctx, role)
}

// GetWorkout fetches a workout by ID.
func (s *Service) GetWorkout(ctx context.Context, id int) (*Workout, error) {
	workout, err := s.storage.GetWorkout(ctx, id)
	if err != nil {
		return nil, err
	}
	if workout == nil {
		return nil, ErrWorkoutNotFound
	}
	return workout, nil
}

// ListWorkouts returns workouts filtered by type and equipment.
func (s *Service) ListWorkouts(ctx context.Context, workoutType string, equipment []string) ([]Workout, error) {
	return s.storage.ListWorkouts(ctx, workoutType, equipment)
}

// CreateWorkout adds a workout to the catalog.
func (s *Service) CreateWorkout(ctx context.Context, workout Workout) (Workout, error) {
	return s.storage.CreateWorkout(ctx, workout)
}

// GetMeal fetches a meal by ID.
func (s *Service) GetMeal(ctx context.Context, id int) (*Meal, error) {
	meal, err := s.storage.GetMeal(ctx, id)
	if err != nil {
		return nil, err
	}
	if meal == nil {
		return nil, ErrMealNotFound
	}
	return meal, nil
}

// ListMeals returns meals, optionally filtered by type.
func (s *Service) ListMeals(ctx context.Context, mealType string) ([]Meal, error) {
	return s.storage.ListMeals(ctx, mealType)
}

// CreateMeal adds a meal to the catalog.
func (s *Service) CreateMeal(ctx context.Context, meal Meal) (Meal, error) {
	return s.storage.CreateMeal(ctx, meal)
}

// ListProgress returns the user's records within the optional date bounds.
func (s *Service) ListProgress(ctx context.Context, userID int, start, end *time.Time) ([]ProgressRecord, error) {
	return s.storage.ListProgress(ctx, userID, start, end)
}

// RecordProgress stores a daily log entry and emits a progress.recorded event.
func (s *Service) RecordProgress(ctx context.Context, record ProgressRecord) (ProgressRecord, error) {
	if record.Date.IsZero() {
		record.Date = s.now()
	}

	stored, err := s.storage.CreateProgress(ctx, record)
	if err != nil {
		return ProgressRecord{}, err
	}

	observability.RecordProgressLogged(stored.Date)
	s.publish(ctx, events.TypeProgressRecorded, events.ProgressRecorded{
		RecordID:         stored.ID,
		UserID:           stored.UserID,
		Date:             stored.Date,
		WorkoutCompleted: stored.WorkoutCompleted,
		WorkoutDuration:  stored.WorkoutDuration,
		CaloriesBurned:   stored.CaloriesBurned,
	})
	return stored, nil
}

// GetClass fetches a class by ID.
func (s *Service) GetClass(ctx context.Context, id int) (*Class, error) {
	class, err := s.storage.GetClass(ctx, id)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, ErrClassNotFound
	}
	return class, nil
}

// ListClasses returns classes filtered by type and start-time bounds.
func (s *Service) ListClasses(ctx context.Context, classType string, start, end *time.Time) ([]Class, error) {
	return s.storage.ListClasses(ctx, classType, start, end)
}

// CreateClass schedules a new class. Role enforcement happens at the API
// layer, which only admits trainers here.
func (s *Service) CreateClass(ctx context.Context, class Class) (Class, error) {
	return s.storage.CreateClass(ctx, class)
}

// ListEnrollments returns the user's enrollments.
func (s *Service) ListEnrollments(ctx context.Context, userID int) ([]Enrollment, error) {
	return s.storage.ListEnrollments(ctx, 0, userID)
}

// Enroll signs the user up for a class. The capacity check and the
// participant increment are separate storage calls with no atomicity
// between them; concurrent enrollments can race past the check.
func (s *Service) Enroll(ctx context.Context, classID, userID int) (Enrollment, error) {
	existing, err := s.storage.ListEnrollments(ctx, classID, userID)
	if err != nil {
		return Enrollment{}, err
	}
	if len(existing) > 0 {
		return Enrollment{}, ErrAlreadyEnrolled
	}

	class, err := s.storage.GetClass(ctx, classID)
	if err != nil {
		return Enrollment{}, err
	}
	if class == nil {
		return Enrollment{}, ErrClassNotFound
	}
	if class.MaxParticipants > 0 && class.CurrentParticipants >= class.MaxParticipants {
		return Enrollment{}, ErrClassFull
	}

	enrollment, err := s.storage.CreateEnrollment(ctx, Enrollment{ClassID: classID, UserID: userID})
	if err != nil {
		return Enrollment{}, err
	}
	// The enrollment is not rolled back if the increment fails.
	if _, err := s.storage.UpdateClassParticipants(ctx, classID, true); err != nil {
		return Enrollment{}, err
	}

	observability.RecordEnrollment()
	s.publish(ctx, events.TypeEnrollmentCreated, events.EnrollmentCreated{
		EnrollmentID: enrollment.ID,
		ClassID:      enrollment.ClassID,
		UserID:       enrollment.UserID,
		EnrolledAt:   enrollment.EnrolledAt,
	})
	return enrollment, nil
}

// Unenroll removes the user's enrollment and releases the seat.
func (s *Service) Unenroll(ctx context.Context, classID, userID int) error {
	deleted, err := s.storage.DeleteEnrollment(ctx, classID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEnrollmentNotFound
	}

	_, err = s.storage.UpdateClassParticipants(ctx, classID, false)
	return err
}

// ListUserMessages returns the union of messages sent and received by the
// user, sorted by sent time descending.
func (s *Service) ListUserMessages(ctx context.Context, userID int) ([]Message, error) {
	sent, err := s.storage.ListMessages(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	received, err := s.storage.ListMessages(ctx, 0, userID)
	if err != nil {
		return nil, err
	}

	merged := make([]Message, 0, len(sent)+len(received))
	merged = append(merged, sent...)
	merged = append(merged, received...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].SentAt.After(merged[j].SentAt)
	})
	return merged, nil
}

// SendMessage delivers a message after verifying the receiver exists.
func (s *Service) SendMessage(ctx context.Context, senderID, receiverID int, content string) (Message, error) {
	receiver, err := s.storage.GetUser(ctx, receiverID)
	if err != nil {
		return Message{}, err
	}
	if receiver == nil {
		return Message{}, ErrUserNotFound
	}

	message, err := s.storage.CreateMessage(ctx, Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	})
	if err != nil {
		return Message{}, err
	}

	observability.RecordMessageSent()
	return message, nil
}

// MarkMessageRead flags a message as read.
func (s *Service) MarkMessageRead(ctx context.Context, id int) error {
	updated, err := s.storage.MarkMessageRead(ctx, id)
	if err != nil {
		return err
	}
	if !updated {
		return ErrMessageNotFound
	}
	return nil
}

// publish emits an event best-effort; delivery failures are logged, never
// surfaced to the caller.
func (s *Service) publish(ctx context.Context, eventType string, payload interface{}) {
	if err := s.events.Publish(ctx, eventType, payload); err != nil {
		log.Printf("publish %s event: %v", eventType, err)
	}
}
