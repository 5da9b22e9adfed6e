package store

import (
	"context"
	"fmt"
	"time"

	"example.com/fitlife/internal/domain"
)

// SeedDemoData populates the store with the demo fixture: five users (two
// trainers), a small workout and meal catalog, three upcoming classes, one
// enrollment and a week of progress for the first user.
func (m *Memory) SeedDemoData(ctx context.Context) error {
	hash, err := domain.HashPassword("password123")
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	users := []domain.User{
		{Username: "ananya", PasswordHash: hash, Email: "ananya@example.com", FullName: "Ananya Sharma", City: "Bangalore", Role: domain.RoleUser},
		{Username: "priya", PasswordHash: hash, Email: "priya@example.com", FullName: "Priya Patel", City: "Mumbai", Role: domain.RoleTrainer},
		{Username: "rahul", PasswordHash: hash, Email: "rahul@example.com", FullName: "Rahul Kumar", City: "Delhi", Role: domain.RoleTrainer},
		{Username: "arjun", PasswordHash: hash, Email: "arjun@example.com", FullName: "Arjun Patel", City: "Mumbai", Role: domain.RoleUser},
		{Username: "diya", PasswordHash: hash, Email: "diya@example.com", FullName: "Diya Sharma", City: "Delhi", Role: domain.RoleUser},
	}
	for _, user := range users {
		if _, err := m.CreateUser(ctx, user); err != nil {
			return err
		}
	}

	workouts := []domain.Workout{
		{
			Name:            "Upper Body Strength",
			Description:     "A workout focused on building upper body strength",
			Type:            "strength",
			EquipmentNeeded: []string{"dumbbells", "bench"},
			Exercises: []domain.Exercise{
				{Name: "Bench Press", Sets: 3, Reps: 12, Weight: 45},
				{Name: "Pull-ups", Sets: 3, Reps: 8},
				{Name: "Shoulder Press", Sets: 3, Reps: 10, Weight: 27.5},
			},
		},
		{
			Name:            "Lower Body Power",
			Description:     "A workout focused on building lower body power",
			Type:            "strength",
			EquipmentNeeded: []string{"barbell", "squat rack"},
			Exercises: []domain.Exercise{
				{Name: "Squats", Sets: 4, Reps: 10, Weight: 60},
				{Name: "Deadlifts", Sets: 3, Reps: 8, Weight: 80},
				{Name: "Lunges", Sets: 3, Reps: 12, Weight: 20},
			},
		},
		{
			Name:            "HIIT Cardio",
			Description:     "High-intensity interval training for cardiovascular fitness",
			Type:            "cardio",
			EquipmentNeeded: []string{},
			Exercises: []domain.Exercise{
				{Name: "Jumping Jacks", Duration: 45, Rest: 15},
				{Name: "Burpees", Duration: 45, Rest: 15},
				{Name: "Mountain Climbers", Duration: 45, Rest: 15},
				{Name: "High Knees", Duration: 45, Rest: 15},
			},
		},
	}
	for _, workout := range workouts {
		if _, err := m.CreateWorkout(ctx, workout); err != nil {
			return err
		}
	}

	meals := []domain.Meal{
		{
			Name:        "Masala Oats with Vegetables",
			Description: "Nutritious breakfast option packed with protein and fiber",
			Type:        domain.MealBreakfast,
			Calories:    420, Protein: 28, Carbs: 55, Fats: 10,
			Image:       "https://images.unsplash.com/photo-1525351484163-7529414344d8",
			Ingredients: []string{"oats", "mixed vegetables", "olive oil", "spices"},
		},
		{
			Name:        "Paneer Salad with Mixed Greens",
			Description: "Protein-rich lunch option with fresh vegetables",
			Type:        domain.MealLunch,
			Calories:    580, Protein: 32, Carbs: 30, Fats: 35,
			Image:       "https://images.unsplash.com/photo-1512621776951-a57141f2eefd",
			Ingredients: []string{"paneer", "mixed greens", "cherry tomatoes", "cucumber", "olive oil", "lemon juice"},
		},
		{
			Name:        "Dal Tadka with Brown Rice",
			Description: "Traditional Indian dinner rich in protein and complex carbs",
			Type:        domain.MealDinner,
			Calories:    520, Protein: 18, Carbs: 70, Fats: 15,
			Image:       "https://images.unsplash.com/photo-1547592180-85f173990554",
			Ingredients: []string{"lentils", "brown rice", "spices", "ghee"},
		},
	}
	for _, meal := range meals {
		if _, err := m.CreateMeal(ctx, meal); err != nil {
			return err
		}
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayAt530PM := today.Add(17*time.Hour + 30*time.Minute)
	tomorrowAt7AM := today.AddDate(0, 0, 1).Add(7 * time.Hour)
	daysToWednesday := (3 - int(now.Weekday()) + 7) % 7
	wednesdayAt6PM := today.AddDate(0, 0, daysToWednesday).Add(18 * time.Hour)

	classes := []domain.Class{
		{
			Name:            "Yoga with Priya",
			Description:     "A calming yoga session to improve flexibility and reduce stress",
			TrainerID:       2,
			StartTime:       todayAt530PM,
			Duration:        45,
			MaxParticipants: 20,
			Type:            "yoga",
		},
		{
			Name:            "HIIT with Rahul",
			Description:     "High-intensity interval training for maximum calorie burn",
			TrainerID:       3,
			StartTime:       tomorrowAt7AM,
			Duration:        30,
			MaxParticipants: 15,
			Type:            "hiit",
		},
		{
			Name:            "Strength Training",
			Description:     "Build muscle and improve overall strength",
			TrainerID:       3,
			StartTime:       wednesdayAt6PM,
			Duration:        60,
			MaxParticipants: 12,
			Type:            "strength",
		},
	}
	for _, class := range classes {
		if _, err := m.CreateClass(ctx, class); err != nil {
			return err
		}
	}

	if _, err := m.CreateEnrollment(ctx, domain.Enrollment{ClassID: 1, UserID: 1}); err != nil {
		return err
	}
	if _, err := m.UpdateClassParticipants(ctx, 1, true); err != nil {
		return err
	}

	progress := []domain.ProgressRecord{
		{UserID: 1, Date: today.AddDate(0, 0, -6), WorkoutCompleted: true, WorkoutID: 1, WorkoutDuration: 45, CaloriesBurned: 350, CaloriesConsumed: 1800, WaterIntake: 2.0},
		{UserID: 1, Date: today.AddDate(0, 0, -5), WorkoutCompleted: true, WorkoutID: 2, WorkoutDuration: 60, CaloriesBurned: 420, CaloriesConsumed: 1750, WaterIntake: 2.2},
		{UserID: 1, Date: today.AddDate(0, 0, -4), CaloriesConsumed: 1900, WaterIntake: 1.8},
		{UserID: 1, Date: today.AddDate(0, 0, -3), WorkoutCompleted: true, WorkoutID: 3, WorkoutDuration: 30, CaloriesBurned: 280, CaloriesConsumed: 1820, WaterIntake: 1.5},
		{UserID: 1, Date: today.AddDate(0, 0, -2), WorkoutCompleted: true, WorkoutID: 1, WorkoutDuration: 75, CaloriesBurned: 510, CaloriesConsumed: 1700, WaterIntake: 2.5},
		{UserID: 1, Date: today.AddDate(0, 0, -1), WorkoutCompleted: true, WorkoutID: 2, WorkoutDuration: 90, CaloriesBurned: 650, CaloriesConsumed: 1770, WaterIntake: 2.0},
		{UserID: 1, Date: today, CaloriesConsumed: 1245, WaterIntake: 1.5},
	}
	for _, record := range progress {
		if _, err := m.CreateProgress(ctx, record); err != nil {
			return err
		}
	}

	messages := []domain.Message{
		{SenderID: 2, ReceiverID: 1, Content: "Hi Ananya, are you ready for our yoga session today?"},
		{SenderID: 1, ReceiverID: 2, Content: "Yes, I'm looking forward to it!"},
		{SenderID: 3, ReceiverID: 1, Content: "Don't forget to bring a yoga mat to class today!"},
	}
	for _, message := range messages {
		if _, err := m.CreateMessage(ctx, message); err != nil {
			return err
		}
	}

	return nil
}
