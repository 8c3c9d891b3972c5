package models

import "strings"

// Intensity values used by convention; the backend does not enforce them.
const (
	IntensityLow      = "low"
	IntensityModerate = "moderate"
	IntensityHigh     = "high"
)

// PredefinedWorkoutTypes are offered as shortcuts; any other non-empty type
// is accepted as a custom workout.
var PredefinedWorkoutTypes = []string{"Running", "Cycling", "Swimming", "Walking", "Gym", "Yoga", "Sports"}

// Workout is a logged workout.
type Workout struct {
	ID             int64   `json:"id"`
	WorkoutType    string  `json:"workout_type"`
	Duration       int     `json:"duration"`
	Intensity      string  `json:"intensity"`
	CaloriesBurned int     `json:"calories_burned"`
	Notes          *string `json:"notes,omitempty"`
	Date           Time    `json:"date"`
}

func (w *Workout) Validate() error {
	if w.ID <= 0 {
		return invalid("workout id must be positive, got %d", w.ID)
	}
	if strings.TrimSpace(w.WorkoutType) == "" {
		return invalid("workout %d has empty type", w.ID)
	}
	return nil
}

// NotesText returns the notes or an empty string.
func (w *Workout) NotesText() string {
	if w.Notes == nil {
		return ""
	}
	return *w.Notes
}

// Input returns the writable fields of w.
func (w *Workout) Input() WorkoutInput {
	return WorkoutInput{
		WorkoutType:    w.WorkoutType,
		Duration:       w.Duration,
		Intensity:      w.Intensity,
		CaloriesBurned: w.CaloriesBurned,
		Notes:          w.Notes,
	}
}

// WorkoutInput is the body of POST /workouts and PUT /workouts/{id}.
type WorkoutInput struct {
	WorkoutType    string  `json:"workout_type"`
	Duration       int     `json:"duration"`
	Intensity      string  `json:"intensity"`
	CaloriesBurned int     `json:"calories_burned"`
	Notes          *string `json:"notes,omitempty"`
}

func (w *WorkoutInput) Validate() error {
	if strings.TrimSpace(w.WorkoutType) == "" {
		return invalid("workout type is required")
	}
	if w.Duration < 0 || w.CaloriesBurned < 0 {
		return invalid("duration and calories must not be negative")
	}
	return nil
}

// StreakData is the server-computed workout streak.
type StreakData struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

func (s *StreakData) Validate() error {
	if s.CurrentStreak < 0 || s.LongestStreak < 0 {
		return invalid("negative streak %d/%d", s.CurrentStreak, s.LongestStreak)
	}
	return nil
}

// Reward is an achievement issued by the server.
type Reward struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	EarnedAt    Time   `json:"earned_at"`
}

func (r *Reward) Validate() error {
	if r.ID <= 0 {
		return invalid("reward id must be positive, got %d", r.ID)
	}
	return nil
}
