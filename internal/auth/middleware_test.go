package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"example.com/fitlife/internal/domain"
	"example.com/fitlife/internal/session"
)

type staticUserLoader struct {
	user *domain.User
}

func (l staticUserLoader) GetUser(_ context.Context, id int) (*domain.User, error) {
	if l.user != nil && l.user.ID == id {
		return l.user, nil
	}
	return nil, nil
}

func TestMiddlewareResolvesSessionCookie(t *testing.T) {
	cfg := Config{Secret: "test-secret", Issuer: "fitlife-test"}
	sessions := session.NewStore(time.Hour)
	user := &domain.User{ID: 1, Username: "ananya", Role: domain.RoleUser}

	sess := sessions.Create(user.ID)
	token, err := IssueToken(cfg, sess)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	mw := NewMiddleware(cfg, sessions, staticUserLoader{user: user})
	var resolved *domain.User
	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resolved, _ = UserFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if resolved == nil || resolved.ID != user.ID {
		t.Fatalf("expected user %d resolved from cookie", user.ID)
	}
}

func TestMiddlewarePassesThroughWithoutCookie(t *testing.T) {
	cfg := Config{Secret: "test-secret", Issuer: "fitlife-test"}
	mw := NewMiddleware(cfg, session.NewStore(time.Hour), staticUserLoader{})

	called := false
	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := UserFromContext(r.Context()); ok {
			t.Fatalf("expected no user in context")
		}
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	if !called {
		t.Fatalf("expected request to pass through")
	}
}

func TestMiddlewareIgnoresDeletedSession(t *testing.T) {
	cfg := Config{Secret: "test-secret", Issuer: "fitlife-test"}
	sessions := session.NewStore(time.Hour)
	user := &domain.User{ID: 1, Username: "ananya", Role: domain.RoleUser}

	sess := sessions.Create(user.ID)
	token, err := IssueToken(cfg, sess)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	sessions.Delete(sess.ID)

	mw := NewMiddleware(cfg, sessions, staticUserLoader{user: user})
	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); ok {
			t.Fatalf("expected logged-out cookie to resolve no user")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)
}
