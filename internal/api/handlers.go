// Package api exposes the HTTP handlers for the fitness tracker.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"example.com/fitlife/internal/auth"
	"example.com/fitlife/internal/domain"
	"example.com/fitlife/internal/session"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service      *domain.Service
	sessions     *session.Store
	authCfg      auth.Config
	cookieSecure bool
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service, sessions *session.Store, authCfg auth.Config, cookieSecure bool) *Handler {
	return &Handler{
		service:      service,
		sessions:     sessions,
		authCfg:      authCfg,
		cookieSecure: cookieSecure,
	}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/auth/login", h.login)
	mux.HandleFunc("/api/auth/register", h.register)
	mux.HandleFunc("/api/auth/logout", h.logout)
	mux.HandleFunc("/api/auth/user", h.authUser)
	mux.HandleFunc("/api/users", h.users)
	mux.HandleFunc("/api/workouts", h.workouts)
	mux.HandleFunc("/api/workouts/", h.workoutByID)
	mux.HandleFunc("/api/meals", h.meals)
	mux.HandleFunc("/api/meals/", h.mealByID)
	mux.HandleFunc("/api/user-progress", h.userProgress)
	mux.HandleFunc("/api/classes", h.classes)
	mux.HandleFunc("/api/classes/", h.classByID)
	mux.HandleFunc("/api/enrollments", h.enrollments)
	mux.HandleFunc("/api/enrollments/", h.enrollmentByClass)
	mux.HandleFunc("/api/messages", h.messages)
	mux.HandleFunc("/api/messages/", h.messageRead)
	mux.HandleFunc("/api/dashboard", h.dashboard)
	mux.HandleFunc("/api/leaderboard", h.leaderboard)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	user, err := h.service.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.issueSession(w, user)
	writeJSON(w, http.StatusOK, UserResponse{User: user})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	user, err := h.service.Register(r.Context(), domain.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		FullName: req.FullName,
		City:     req.City,
		Role:     req.Role,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	// Registration logs the new account in immediately.
	h.issueSession(w, user)
	writeJSON(w, http.StatusCreated, UserResponse{User: user})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	if id, ok := auth.SessionIDFromContext(r.Context()); ok {
		h.sessions.Delete(id)
	}
	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (h *Handler) authUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, UserResponse{User: *user})
}

func (h *Handler) users(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if _, ok := auth.UserFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "not authenticated")
		return
	}

	users, err := h.service.ListUsers(r.Context(), r.URL.Query().Get("role"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "not authenticated")
		return
	}

	snapshot, err := h.service.Dashboard(r.Context(), user.ID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	entries, err := h.service.Leaderboard(r.Context())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// issueSession opens a server-side session and sets the signed cookie.
func (h *Handler) issueSession(w http.ResponseWriter, user domain.User) {
	sess := h.sessions.Create(user.ID)
	token, err := auth.IssueToken(h.authCfg, sess)
	if err != nil {
		log.Printf("issue session token: %v", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// UserResponse wraps a user payload the way the auth endpoints return it.
type UserResponse struct {
	User domain.User `json:"user"`
}

// writeDomainError maps domain sentinel errors onto HTTP statuses:
// not-found 404, conflicts 400, bad credentials 401, anything else 500.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrWorkoutNotFound),
		errors.Is(err, domain.ErrMealNotFound),
		errors.Is(err, domain.ErrClassNotFound),
		errors.Is(err, domain.ErrMessageNotFound),
		errors.Is(err, domain.ErrEnrollmentNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrAlreadyEnrolled),
		errors.Is(err, domain.ErrClassFull):
		writeError(w, http.StatusBadRequest, "conflict", err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "unauthorized", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// parseDateParam reads an optional RFC 3339 query parameter.
func parseDateParam(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errors.New(name + " must be an RFC 3339 timestamp")
	}
	return &parsed, nil
}
