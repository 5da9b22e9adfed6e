package api

import (
	"errors"
	"strings"
	"time"

	"example.com/fitlife/internal/domain"
)

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate ensures request correctness.
func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return errors.New("username is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	City     string `json:"city"`
	Role     string `json:"role"`
}

// Validate ensures request correctness.
func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return errors.New("username is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	if strings.TrimSpace(r.FullName) == "" {
		return errors.New("fullName is required")
	}
	if r.Role != "" && r.Role != domain.RoleUser && r.Role != domain.RoleTrainer {
		return errors.New("role must be user or trainer")
	}
	return nil
}

// CreateWorkoutRequest is the payload for POST /api/workouts.
type CreateWorkoutRequest struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Type            string            `json:"type"`
	EquipmentNeeded []string          `json:"equipmentNeeded"`
	Exercises       []domain.Exercise `json:"exercises"`
}

// Validate ensures request correctness.
func (r CreateWorkoutRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(r.Type) == "" {
		return errors.New("type is required")
	}
	for _, exercise := range r.Exercises {
		if strings.TrimSpace(exercise.Name) == "" {
			return errors.New("every exercise needs a name")
		}
	}
	return nil
}

// CreateMealRequest is the payload for POST /api/meals.
type CreateMealRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Calories    int      `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fats        float64  `json:"fats"`
	Image       string   `json:"image"`
	Ingredients []string `json:"ingredients"`
}

// Validate ensures request correctness. Macros must be non-negative.
func (r CreateMealRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if !domain.ValidMealType(r.Type) {
		return errors.New("type must be breakfast, lunch, dinner or snack")
	}
	if r.Calories < 0 {
		return errors.New("calories must be >= 0")
	}
	if r.Protein < 0 || r.Carbs < 0 || r.Fats < 0 {
		return errors.New("macros must be >= 0")
	}
	return nil
}

// CreateProgressRequest is the payload for POST /api/user-progress. The
// user is taken from the session, never the body.
type CreateProgressRequest struct {
	Date             *time.Time `json:"date"`
	WorkoutCompleted bool       `json:"workoutCompleted"`
	WorkoutID        int        `json:"workoutId"`
	WorkoutDuration  int        `json:"workoutDuration"`
	CaloriesBurned   int        `json:"caloriesBurned"`
	CaloriesConsumed int        `json:"caloriesConsumed"`
	WaterIntake      float64    `json:"waterIntake"`
	Weight           float64    `json:"weight"`
	Notes            string     `json:"notes"`
}

// Validate ensures request correctness.
func (r CreateProgressRequest) Validate() error {
	if r.WorkoutDuration < 0 {
		return errors.New("workoutDuration must be >= 0")
	}
	if r.CaloriesBurned < 0 || r.CaloriesConsumed < 0 {
		return errors.New("calorie values must be >= 0")
	}
	if r.WaterIntake < 0 {
		return errors.New("waterIntake must be >= 0")
	}
	if r.Weight < 0 {
		return errors.New("weight must be >= 0")
	}
	return nil
}

// CreateClassRequest is the payload for POST /api/classes. The trainer is
// taken from the session.
type CreateClassRequest struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	StartTime       time.Time `json:"startTime"`
	Duration        int       `json:"duration"`
	MaxParticipants int       `json:"maxParticipants"`
	Type            string    `json:"type"`
}

// Validate ensures request correctness.
func (r CreateClassRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(r.Type) == "" {
		return errors.New("type is required")
	}
	if r.StartTime.IsZero() {
		return errors.New("startTime is required")
	}
	if r.Duration <= 0 {
		return errors.New("duration must be > 0")
	}
	if r.MaxParticipants < 0 {
		return errors.New("maxParticipants must be >= 0")
	}
	return nil
}

// CreateEnrollmentRequest is the payload for POST /api/enrollments.
type CreateEnrollmentRequest struct {
	ClassID int `json:"classId"`
}

// Validate ensures request correctness.
func (r CreateEnrollmentRequest) Validate() error {
	if r.ClassID <= 0 {
		return errors.New("classId is required")
	}
	return nil
}

// SendMessageRequest is the payload for POST /api/messages.
type SendMessageRequest struct {
	ReceiverID int    `json:"receiverId"`
	Content    string `json:"content"`
}

// Validate ensures request correctness.
func (r SendMessageRequest) Validate() error {
	if r.ReceiverID <= 0 {
		return errors.New("receiverId is required")
	}
	if strings.TrimSpace(r.Content) == "" {
		return errors.New("content is required")
	}
	return nil
}
