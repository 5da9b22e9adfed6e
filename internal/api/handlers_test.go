package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"example.com/fitlife/internal/auth"
	"example.com/fitlife/internal/domain"
	"example.com/fitlife/internal/session"
	"example.com/fitlife/internal/store"
)

func newTestHandler(t *testing.T) (*Handler, *domain.Service) {
	t.Helper()
	service := domain.NewService(store.NewMemory(), nil)
	sessions := session.NewStore(time.Hour)
	cfg := auth.Config{Secret: "test-secret", Issuer: "fitlife-test"}
	return NewHandler(service, sessions, cfg, false), service
}

func seedUser(t *testing.T, service *domain.Service, username, role string) domain.User {
	t.Helper()
	user, err := service.Register(context.Background(), domain.RegisterInput{
		Username: username,
		Password: "password123",
		Email:    username + "@example.com",
		FullName: username,
		Role:     role,
	})
	if err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	return user
}

func asUser(req *http.Request, user *domain.User) *http.Request {
	return req.WithContext(auth.WithUser(req.Context(), user))
}

func TestRegisterIssuesSessionCookie(t *testing.T) {
	handler, _ := newTestHandler(t)

	buf, _ := json.Marshal(map[string]string{
		"username": "ananya",
		"password": "password123",
		"email":    "ananya@example.com",
		"fullName": "Ananya Sharma",
		"city":     "Bangalore",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.register(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var body UserResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.User.ID == 0 {
		t.Fatalf("expected assigned user ID")
	}
	if body.User.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", body.User.Role)
	}

	var sessionCookie *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == auth.CookieName {
			sessionCookie = c
		}
	}
	if sessionCookie == nil {
		t.Fatalf("expected session cookie %s", auth.CookieName)
	}
	if !sessionCookie.HttpOnly {
		t.Fatalf("session cookie must be http-only")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	handler, service := newTestHandler(t)
	seedUser(t, service, "ananya", "")

	buf, _ := json.Marshal(map[string]string{
		"username": "ananya",
		"password": "password123",
		"email":    "other@example.com",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(buf))

	rr := httptest.NewRecorder()
	handler.register(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	handler, service := newTestHandler(t)
	seedUser(t, service, "ananya", "")

	buf, _ := json.Marshal(map[string]string{
		"username": "ananya",
		"password": "wrong",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(buf))

	rr := httptest.NewRecorder()
	handler.login(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestAuthUserRequiresSession(t *testing.T) {
	handler, service := newTestHandler(t)
	user := seedUser(t, service, "ananya", "")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	rr := httptest.NewRecorder()
	handler.authUser(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", rr.Code)
	}

	req = asUser(httptest.NewRequest(http.MethodGet, "/api/auth/user", nil), &user)
	rr = httptest.NewRecorder()
	handler.authUser(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestListWorkoutsIsPublic(t *testing.T) {
	handler, service := newTestHandler(t)

	_, err := service.CreateWorkout(context.Background(), domain.Workout{
		Name:            "full body",
		Type:            "strength",
		EquipmentNeeded: []string{"dumbbells"},
	})
	if err != nil {
		t.Fatalf("seed workout failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/workouts?type=strength", nil)
	rr := httptest.NewRecorder()
	handler.workouts(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var workouts []domain.Workout
	if err := json.NewDecoder(rr.Body).Decode(&workouts); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(workouts) != 1 {
		t.Fatalf("expected one workout, got %d", len(workouts))
	}
}

func TestCreateWorkoutRequiresAuth(t *testing.T) {
	handler, _ := newTestHandler(t)

	buf, _ := json.Marshal(map[string]interface{}{"name": "hiit", "type": "cardio"})
	req := httptest.NewRequest(http.MethodPost, "/api/workouts", bytes.NewReader(buf))
	rr := httptest.NewRecorder()
	handler.workouts(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestCreateClassRequiresTrainerRole(t *testing.T) {
	handler, service := newTestHandler(t)
	member := seedUser(t, service, "ananya", "")
	trainer := seedUser(t, service, "priya", domain.RoleTrainer)

	payload := map[string]interface{}{
		"name":      "morning yoga",
		"startTime": time.Now().Add(time.Hour).Format(time.RFC3339),
		"duration":  60,
		"type":      "yoga",
	}
	buf, _ := json.Marshal(payload)

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/classes", bytes.NewReader(buf)), &member)
	rr := httptest.NewRecorder()
	handler.classes(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for member, got %d", rr.Code)
	}

	buf, _ = json.Marshal(payload)
	req = asUser(httptest.NewRequest(http.MethodPost, "/api/classes", bytes.NewReader(buf)), &trainer)
	rr = httptest.NewRecorder()
	handler.classes(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 for trainer, got %d: %s", rr.Code, rr.Body.String())
	}

	var class domain.Class
	if err := json.NewDecoder(rr.Body).Decode(&class); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if class.TrainerID != trainer.ID {
		t.Fatalf("expected trainer ID %d, got %d", trainer.ID, class.TrainerID)
	}
}

func TestEnrollTwiceConflicts(t *testing.T) {
	handler, service := newTestHandler(t)
	member := seedUser(t, service, "ananya", "")

	class, err := service.CreateClass(context.Background(), domain.Class{
		Name:      "morning yoga",
		TrainerID: 99,
		StartTime: time.Now().Add(time.Hour),
		Duration:  60,
		Type:      "yoga",
	})
	if err != nil {
		t.Fatalf("seed class failed: %v", err)
	}

	enroll := func() *httptest.ResponseRecorder {
		buf, _ := json.Marshal(map[string]int{"classId": class.ID})
		req := asUser(httptest.NewRequest(http.MethodPost, "/api/enrollments", bytes.NewReader(buf)), &member)
		rr := httptest.NewRecorder()
		handler.enrollments(rr, req)
		return rr
	}

	if rr := enroll(); rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if rr := enroll(); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on duplicate enrollment, got %d", rr.Code)
	}
}

func TestUnenrollByClassID(t *testing.T) {
	handler, service := newTestHandler(t)
	member := seedUser(t, service, "ananya", "")

	class, err := service.CreateClass(context.Background(), domain.Class{
		Name:      "morning yoga",
		TrainerID: 99,
		StartTime: time.Now().Add(time.Hour),
		Duration:  60,
		Type:      "yoga",
	})
	if err != nil {
		t.Fatalf("seed class failed: %v", err)
	}
	if _, err := service.Enroll(context.Background(), class.ID, member.ID); err != nil {
		t.Fatalf("seed enrollment failed: %v", err)
	}

	req := asUser(httptest.NewRequest(http.MethodDelete, "/api/enrollments/1", nil), &member)
	rr := httptest.NewRecorder()
	handler.enrollmentByClass(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	req = asUser(httptest.NewRequest(http.MethodDelete, "/api/enrollments/1", nil), &member)
	rr = httptest.NewRecorder()
	handler.enrollmentByClass(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after cancel, got %d", rr.Code)
	}
}

func TestDashboardRequiresAuth(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rr := httptest.NewRecorder()
	handler.dashboard(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestLeaderboardIsPublic(t *testing.T) {
	handler, service := newTestHandler(t)
	seedUser(t, service, "ananya", "")

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	rr := httptest.NewRecorder()
	handler.leaderboard(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var entries []domain.LeaderboardEntry
	if err := json.NewDecoder(rr.Body).Decode(&entries); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
}

func TestRecordProgressUsesSessionUser(t *testing.T) {
	handler, service := newTestHandler(t)
	member := seedUser(t, service, "ananya", "")

	buf, _ := json.Marshal(map[string]interface{}{
		"workoutCompleted": true,
		"workoutDuration":  45,
		"caloriesBurned":   320,
	})
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/user-progress", bytes.NewReader(buf)), &member)
	rr := httptest.NewRecorder()
	handler.userProgress(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var record domain.ProgressRecord
	if err := json.NewDecoder(rr.Body).Decode(&record); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if record.UserID != member.ID {
		t.Fatalf("expected record owner %d, got %d", member.ID, record.UserID)
	}
	if record.Date.IsZero() {
		t.Fatalf("expected date default")
	}
}

func TestMarkMessageReadRoute(t *testing.T) {
	handler, service := newTestHandler(t)
	a := seedUser(t, service, "ananya", "")
	b := seedUser(t, service, "priya", domain.RoleTrainer)

	message, err := service.SendMessage(context.Background(), a.ID, b.ID, "hello")
	if err != nil {
		t.Fatalf("seed message failed: %v", err)
	}

	req := asUser(httptest.NewRequest(http.MethodPut, "/api/messages/1/read", nil), &b)
	rr := httptest.NewRecorder()
	handler.messageRead(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	messages, err := service.ListUserMessages(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("list messages failed: %v", err)
	}
	if len(messages) != 1 || messages[0].ID != message.ID || !messages[0].Read {
		t.Fatalf("expected message %d marked read", message.ID)
	}
}
