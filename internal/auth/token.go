// Package auth issues and validates the signed session-cookie tokens.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"example.com/fitlife/internal/session"
)

// CookieName is the session cookie set on login and registration.
const CookieName = "fitlife_session"

// Config holds token signing parameters.
type Config struct {
	Secret string
	Issuer string
}

// SessionClaims is the payload carried by the cookie token. The session
// referenced by SessionID must still exist server-side to be accepted.
type SessionClaims struct {
	SessionID string
	UserID    int
	ExpiresAt time.Time
}

// ErrMissingToken is returned when no session cookie is present.
var ErrMissingToken = errors.New("missing session token")

// ErrInvalidToken wraps parsing/validation errors.
var ErrInvalidToken = errors.New("invalid session token")

// IssueToken signs a token referencing the server-side session.
func IssueToken(cfg Config, sess session.Session) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": cfg.Issuer,
		"sub": strconv.Itoa(sess.UserID),
		"sid": sess.ID,
		"iat": sess.CreatedAt.Unix(),
		"exp": sess.ExpiresAt.Unix(),
	})
	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken validates a token and returns normalized claims.
func ParseToken(tokenString string, cfg Config) (*SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(cfg.Issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	subject, _ := claims["sub"].(string)
	sessionID, _ := claims["sid"].(string)
	if subject == "" || sessionID == "" {
		return nil, ErrInvalidToken
	}
	userID, err := strconv.Atoi(subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalidToken
	}

	return &SessionClaims{
		SessionID: sessionID,
		UserID:    userID,
		ExpiresAt: exp.Time,
	}, nil
}
