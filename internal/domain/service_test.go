package domain_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/fitlife/internal/domain"
	"example.com/fitlife/internal/events"
	"example.com/fitlife/internal/store"
)

// capturePublisher records emitted events for assertions.
type capturePublisher struct {
	mu    sync.Mutex
	types []string
}

func (p *capturePublisher) Publish(_ context.Context, eventType string, _ interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.types = append(p.types, eventType)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) captured() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.types...)
}

func register(t *testing.T, svc *domain.Service, username, role string) domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), domain.RegisterInput{
		Username: username,
		Password: "password123",
		Email:    username + "@example.com",
		FullName: username,
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	storage := store.NewMemory()
	svc := domain.NewService(storage, nil)

	register(t, svc, "ananya", "")

	_, err := svc.Register(ctx, domain.RegisterInput{
		Username: "ananya",
		Password: "other",
		Email:    "fresh@example.com",
	})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)

	_, err = svc.Register(ctx, domain.RegisterInput{
		Username: "someone",
		Password: "other",
		Email:    "ananya@example.com",
	})
	require.ErrorIs(t, err, domain.ErrEmailTaken)

	users, err := svc.ListUsers(ctx, "")
	require.NoError(t, err)
	require.Len(t, users, 1, "failed registrations must not create accounts")
	require.Equal(t, domain.RoleUser, users[0].Role, "role defaults to user")
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := domain.NewService(store.NewMemory(), nil)

	created := register(t, svc, "ananya", "")

	user, err := svc.Authenticate(ctx, "ananya", "password123")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)

	_, err = svc.Authenticate(ctx, "ananya", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "password123")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestEnroll(t *testing.T) {
	ctx := context.Background()
	storage := store.NewMemory()
	publisher := &capturePublisher{}
	svc := domain.NewService(storage, publisher)

	member := register(t, svc, "ananya", "")
	other := register(t, svc, "arjun", "")

	class, err := svc.CreateClass(ctx, domain.Class{
		Name:            "morning yoga",
		TrainerID:       99,
		StartTime:       time.Now().Add(time.Hour),
		Duration:        60,
		MaxParticipants: 1,
		Type:            "yoga",
	})
	require.NoError(t, err)

	enrollment, err := svc.Enroll(ctx, class.ID, member.ID)
	require.NoError(t, err)
	require.Equal(t, class.ID, enrollment.ClassID)
	require.Contains(t, publisher.captured(), events.TypeEnrollmentCreated)

	updated, err := svc.GetClass(ctx, class.ID)
	require.NoError(t, err)
	require.Equal(t, 1, updated.CurrentParticipants)

	_, err = svc.Enroll(ctx, class.ID, member.ID)
	require.ErrorIs(t, err, domain.ErrAlreadyEnrolled)

	_, err = svc.Enroll(ctx, class.ID, other.ID)
	require.ErrorIs(t, err, domain.ErrClassFull)

	_, err = svc.Enroll(ctx, 404, member.ID)
	require.ErrorIs(t, err, domain.ErrClassNotFound)
}

func TestUnenrollReleasesSeat(t *testing.T) {
	ctx := context.Background()
	svc := domain.NewService(store.NewMemory(), nil)

	member := register(t, svc, "ananya", "")
	class, err := svc.CreateClass(ctx, domain.Class{
		Name:      "hiit blast",
		TrainerID: 99,
		StartTime: time.Now().Add(time.Hour),
		Duration:  45,
		Type:      "hiit",
	})
	require.NoError(t, err)

	_, err = svc.Enroll(ctx, class.ID, member.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Unenroll(ctx, class.ID, member.ID))

	updated, err := svc.GetClass(ctx, class.ID)
	require.NoError(t, err)
	require.Equal(t, 0, updated.CurrentParticipants)

	err = svc.Unenroll(ctx, class.ID, member.ID)
	require.ErrorIs(t, err, domain.ErrEnrollmentNotFound)
}

func TestRecordProgressDefaultsDateAndPublishes(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)
	publisher := &capturePublisher{}
	svc := domain.NewService(store.NewMemory(), publisher, domain.WithClock(func() time.Time { return now }))

	stored, err := svc.RecordProgress(ctx, domain.ProgressRecord{
		UserID:           1,
		WorkoutCompleted: true,
		WorkoutDuration:  45,
	})
	require.NoError(t, err)
	require.Equal(t, now, stored.Date)
	require.Contains(t, publisher.captured(), events.TypeProgressRecorded)

	explicit := now.AddDate(0, 0, -1)
	stored, err = svc.RecordProgress(ctx, domain.ProgressRecord{UserID: 1, Date: explicit})
	require.NoError(t, err)
	require.Equal(t, explicit, stored.Date)
}

func TestSendMessageRequiresReceiver(t *testing.T) {
	ctx := context.Background()
	svc := domain.NewService(store.NewMemory(), nil)

	sender := register(t, svc, "ananya", "")
	receiver := register(t, svc, "priya", domain.RoleTrainer)

	_, err := svc.SendMessage(ctx, sender.ID, 404, "hello?")
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	message, err := svc.SendMessage(ctx, sender.ID, receiver.ID, "hello")
	require.NoError(t, err)
	require.False(t, message.Read)
	require.False(t, message.SentAt.IsZero())
}

func TestListUserMessagesMergesBothDirections(t *testing.T) {
	ctx := context.Background()
	svc := domain.NewService(store.NewMemory(), nil)

	a := register(t, svc, "ananya", "")
	b := register(t, svc, "priya", domain.RoleTrainer)
	c := register(t, svc, "rahul", domain.RoleTrainer)

	_, err := svc.SendMessage(ctx, a.ID, b.ID, "from a to b")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond) // distinct sent timestamps
	_, err = svc.SendMessage(ctx, b.ID, a.ID, "from b to a")
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, b.ID, c.ID, "not a's conversation")
	require.NoError(t, err)

	messages, err := svc.ListUserMessages(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	// Newest first.
	require.Equal(t, "from b to a", messages[0].Content)
	require.Equal(t, "from a to b", messages[1].Content)
}

func TestMarkMessageRead(t *testing.T) {
	ctx := context.Background()
	svc := domain.NewService(store.NewMemory(), nil)

	a := register(t, svc, "ananya", "")
	b := register(t, svc, "priya", domain.RoleTrainer)

	message, err := svc.SendMessage(ctx, a.ID, b.ID, "hello")
	require.NoError(t, err)

	require.NoError(t, svc.MarkMessageRead(ctx, message.ID))
	require.ErrorIs(t, svc.MarkMessageRead(ctx, 404), domain.ErrMessageNotFound)
}
