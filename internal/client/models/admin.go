package models

// Analytics is the platform summary shown to administrators.
type Analytics struct {
	TotalUsers             int     `json:"total_users"`
	TotalWorkouts          int     `json:"total_workouts"`
	ActiveUsers            int     `json:"active_users"`
	AverageWorkoutsPerUser float64 `json:"average_workouts_per_user"`
}

func (a *Analytics) Validate() error {
	if a.TotalUsers < 0 || a.TotalWorkouts < 0 || a.ActiveUsers < 0 {
		return invalid("negative analytics counters")
	}
	return nil
}

// UserStats is the per-user summary of GET /admin/users/{id}/stats.
type UserStats struct {
	UserID              int64  `json:"user_id"`
	Username            string `json:"username"`
	TotalWorkouts       int    `json:"total_workouts"`
	TotalCaloriesBurned int    `json:"total_calories_burned"`
	TotalWorkoutMinutes int    `json:"total_workout_minutes"`
}

func (s *UserStats) Validate() error {
	if s.UserID <= 0 {
		return invalid("stats user id must be positive, got %d", s.UserID)
	}
	return nil
}
