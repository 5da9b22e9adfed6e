package domain

import "time"

// Exercise is a single entry in a workout routine. Strength entries carry
// sets/reps, timed entries carry duration/rest seconds.
type Exercise struct {
	Name     string  `json:"name"`
	Sets     int     `json:"sets,omitempty"`
	Reps     int     `json:"reps,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
	Duration int     `json:"duration,omitempty"`
	Rest     int     `json:"rest,omitempty"`
}

// Workout is a catalog entry describing a routine.
type Workout struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	Type            string     `json:"type"`
	EquipmentNeeded []string   `json:"equipmentNeeded"`
	Exercises       []Exercise `json:"exercises"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// Meal types accepted by the catalog.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// Meal is a catalog entry with calorie and macro information.
type Meal struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	Calories    int       `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fats        float64   `json:"fats"`
	Image       string    `json:"image,omitempty"`
	Ingredients []string  `json:"ingredients"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ValidMealType reports whether t is one of the known meal types.
func ValidMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}
