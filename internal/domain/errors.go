package domain

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be located.
	ErrUserNotFound = errors.New("user not found")
	// ErrWorkoutNotFound is returned when a workout cannot be located.
	ErrWorkoutNotFound = errors.New("workout not found")
	// ErrMealNotFound is returned when a meal cannot be located.
	ErrMealNotFound = errors.New("meal not found")
	// ErrClassNotFound is returned when a class cannot be located.
	ErrClassNotFound = errors.New("class not found")
	// ErrMessageNotFound is returned when a message cannot be located.
	ErrMessageNotFound = errors.New("message not found")
	// ErrEnrollmentNotFound is returned when no enrollment matches.
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	// ErrUsernameTaken indicates the username is already registered.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already exists")
	// ErrAlreadyEnrolled indicates the user is already enrolled in the class.
	ErrAlreadyEnrolled = errors.New("already enrolled in this class")
	// ErrClassFull indicates the class is at maximum capacity.
	ErrClassFull = errors.New("class is full")

	// ErrInvalidCredentials covers both unknown username and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
