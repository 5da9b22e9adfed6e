package auth

import (
	"context"
	"net/http"

	"example.com/fitlife/internal/domain"
	"example.com/fitlife/internal/session"
)

// UserLoader resolves the user referenced by a live session.
type UserLoader interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
}

// Middleware resolves the session cookie into a request-scoped user. It
// never rejects a request itself; handlers that require authentication
// check the context and answer 401.
type Middleware struct {
	cfg      Config
	sessions *session.Store
	users    UserLoader
}

// NewMiddleware constructs Middleware.
func NewMiddleware(cfg Config, sessions *session.Store, users UserLoader) Middleware {
	return Middleware{cfg: cfg, sessions: sessions, users: users}
}

// Wrap attaches session resolution to an http.Handler.
func (m Middleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := ParseToken(cookie.Value, m.cfg)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		// The token alone is not enough: the server-side session must
		// still exist, so logout invalidates outstanding cookies.
		sess, ok := m.sessions.Get(claims.SessionID)
		if !ok || sess.UserID != claims.UserID {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.users.GetUser(r.Context(), sess.UserID)
		if err != nil || user == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := WithUser(r.Context(), user)
		ctx = WithSessionID(ctx, sess.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
