package auth

import (
	"context"

	"example.com/fitlife/internal/domain"
)

type contextKey string

const userKey contextKey = "fitlife-auth-user"

const sessionKey contextKey = "fitlife-auth-session"

// WithUser stores the authenticated user on the context.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext retrieves the user stored by WithUser.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}

// WithSessionID stores the live session ID on the context.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey, id)
}

// SessionIDFromContext retrieves the session ID stored by WithSessionID.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionKey).(string)
	return id, ok
}
