package domain

import (
	"context"
	"fmt"
	"time"
)

// Fixed daily nutrition goals shown on the dashboard. These are constants,
// not derived from user data.
const (
	goalProtein  = 120
	goalCarbs    = 250
	goalFats     = 60
	goalCalories = 1800

	currentProtein = 78
	currentCarbs   = 105
	currentFats    = 48
)

var dayLabels = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// NextSession describes the user's soonest enrolled upcoming class.
type NextSession struct {
	TimeUntil   string `json:"timeUntil"`
	ClassName   string `json:"className"`
	TrainerName string `json:"trainerName"`
	Time        string `json:"time"`
}

// TodayStats summarizes the current day.
type TodayStats struct {
	CaloriesConsumed int          `json:"caloriesConsumed"`
	WaterIntake      float64      `json:"waterIntake"`
	WorkoutStreak    int          `json:"workoutStreak"`
	NextSession      *NextSession `json:"nextSession"`
}

// ActivityDay is one row of the 7-day activity series.
type ActivityDay struct {
	Day             string `json:"day"`
	WorkoutDuration int    `json:"workoutDuration"`
	CaloriesBurned  int    `json:"caloriesBurned"`
}

// MacroProgress pairs a current value with its daily goal.
type MacroProgress struct {
	Current int `json:"current"`
	Goal    int `json:"goal"`
}

// NutritionBreakdown reports macro progress against the fixed goals.
type NutritionBreakdown struct {
	Protein  MacroProgress `json:"protein"`
	Carbs    MacroProgress `json:"carbs"`
	Fats     MacroProgress `json:"fats"`
	Calories MacroProgress `json:"calories"`
}

// UpcomingClass is a class annotated with the viewer's enrollment status and
// the trainer's display name.
type UpcomingClass struct {
	Class
	Enrolled    bool   `json:"enrolled"`
	TrainerName string `json:"trainerName"`
}

// MealPlan holds the first catalog meal of each main type.
type MealPlan struct {
	Breakfast *Meal `json:"breakfast"`
	Lunch     *Meal `json:"lunch"`
	Dinner    *Meal `json:"dinner"`
}

// DashboardSnapshot is the combined read view served at /api/dashboard.
type DashboardSnapshot struct {
	User               User               `json:"user"`
	TodayStats         TodayStats         `json:"todayStats"`
	WeeklyActivity     []ActivityDay      `json:"weeklyActivity"`
	NutritionBreakdown NutritionBreakdown `json:"nutritionBreakdown"`
	TodayWorkout       *Workout           `json:"todayWorkout"`
	MealPlan           MealPlan           `json:"mealPlan"`
	UpcomingClasses    []UpcomingClass    `json:"upcomingClasses"`
}

// Dashboard assembles the per-user snapshot: today's stats, the workout
// streak, the 7-day activity series, the next three upcoming classes and the
// placeholder workout/meal selections.
func (s *Service) Dashboard(ctx context.Context, userID int) (*DashboardSnapshot, error) {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	now := s.now()
	midnight := startOfDay(now)
	nextMidnight := midnight.AddDate(0, 0, 1)

	// One fetch covers both the today window and the streak walk.
	weekAgo := midnight.AddDate(0, 0, -7)
	recent, err := s.storage.ListProgress(ctx, userID, &weekAgo, nil)
	if err != nil {
		return nil, err
	}

	// First record falling inside [midnight, nextMidnight). No dedup when
	// multiple records share the day.
	var today *ProgressRecord
	for i := range recent {
		if !recent[i].Date.Before(midnight) && recent[i].Date.Before(nextMidnight) {
			today = &recent[i]
			break
		}
	}

	// Streak counts consecutive completed-workout days walking backward from
	// yesterday, stopping at the first gap. Today is excluded.
	streak := 0
	for i := 1; i <= 7; i++ {
		day := midnight.AddDate(0, 0, -i)
		record := findByDay(recent, day)
		if record == nil || !record.WorkoutCompleted {
			break
		}
		streak++
	}

	enrollments, err := s.storage.ListEnrollments(ctx, 0, userID)
	if err != nil {
		return nil, err
	}
	enrolledIDs := make(map[int]bool, len(enrollments))
	for _, e := range enrollments {
		enrolledIDs[e.ClassID] = true
	}

	classes, err := s.storage.ListClasses(ctx, "", &now, nil)
	if err != nil {
		return nil, err
	}
	if len(classes) > 3 {
		classes = classes[:3]
	}

	upcoming := make([]UpcomingClass, 0, len(classes))
	for _, c := range classes {
		trainerName := "Unknown"
		if trainer, err := s.storage.GetUser(ctx, c.TrainerID); err != nil {
			return nil, err
		} else if trainer != nil {
			trainerName = trainer.FullName
		}
		upcoming = append(upcoming, UpcomingClass{
			Class:       c,
			Enrolled:    enrolledIDs[c.ID],
			TrainerName: trainerName,
		})
	}

	var nextSession *NextSession
	for _, c := range upcoming {
		if !c.Enrolled {
			continue
		}
		diff := c.StartTime.Sub(now)
		hours := int(diff / time.Hour)
		minutes := int((diff % time.Hour) / time.Minute)
		nextSession = &NextSession{
			TimeUntil:   fmt.Sprintf("%dh %dm", hours, minutes),
			ClassName:   c.Name,
			TrainerName: c.TrainerName,
			Time:        c.StartTime.Format("3:04 PM"),
		}
		break
	}

	weekly := make([]ActivityDay, 0, 7)
	for i := 6; i >= 0; i-- {
		day := midnight.AddDate(0, 0, -i)
		row := ActivityDay{Day: dayLabels[int(day.Weekday())]}
		if record := findByDay(recent, day); record != nil {
			row.WorkoutDuration = record.WorkoutDuration
			row.CaloriesBurned = record.CaloriesBurned
		}
		weekly = append(weekly, row)
	}

	// First workout in the catalog stands in for a personalized pick.
	workouts, err := s.storage.ListWorkouts(ctx, "", nil)
	if err != nil {
		return nil, err
	}
	var todayWorkout *Workout
	if len(workouts) > 0 {
		todayWorkout = &workouts[0]
	}

	meals, err := s.storage.ListMeals(ctx, "")
	if err != nil {
		return nil, err
	}
	plan := MealPlan{
		Breakfast: firstMealOfType(meals, MealBreakfast),
		Lunch:     firstMealOfType(meals, MealLunch),
		Dinner:    firstMealOfType(meals, MealDinner),
	}

	stats := TodayStats{WorkoutStreak: streak, NextSession: nextSession}
	if today != nil {
		stats.CaloriesConsumed = today.CaloriesConsumed
		stats.WaterIntake = today.WaterIntake
	}

	return &DashboardSnapshot{
		User:           *user,
		TodayStats:     stats,
		WeeklyActivity: weekly,
		NutritionBreakdown: NutritionBreakdown{
			Protein:  MacroProgress{Current: currentProtein, Goal: goalProtein},
			Carbs:    MacroProgress{Current: currentCarbs, Goal: goalCarbs},
			Fats:     MacroProgress{Current: currentFats, Goal: goalFats},
			Calories: MacroProgress{Current: stats.CaloriesConsumed, Goal: goalCalories},
		},
		TodayWorkout:    todayWorkout,
		MealPlan:        plan,
		UpcomingClasses: upcoming,
	}, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func findByDay(records []ProgressRecord, day time.Time) *ProgressRecord {
	for i := range records {
		if sameDay(records[i].Date, day) {
			return &records[i]
		}
	}
	return nil
}

func firstMealOfType(meals []Meal, mealType string) *Meal {
	for i := range meals {
		if meals[i].Type == mealType {
			return &meals[i]
		}
	}
	return nil
}
