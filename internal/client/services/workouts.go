package services

import (
	"context"
	"slices"
	"strings"

	"github.com/dmitrijs2005/fittrack/internal/client/client"
	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/logging"
)

// WorkoutGroup is the workouts of one calendar day.
type WorkoutGroup struct {
	Date     string
	Workouts []models.Workout
}

// GroupByDate groups workouts by the YYYY-MM-DD of their date. Groups come
// newest first; workouts keep their input order inside a group.
func GroupByDate(workouts []models.Workout) []WorkoutGroup {
	idx := make(map[string]int)
	var groups []WorkoutGroup
	for _, w := range workouts {
		key := w.Date.DateKey()
		i, ok := idx[key]
		if !ok {
			i = len(groups)
			idx[key] = i
			groups = append(groups, WorkoutGroup{Date: key})
		}
		groups[i].Workouts = append(groups[i].Workouts, w)
	}
	slices.SortStableFunc(groups, func(a, b WorkoutGroup) int {
		return strings.Compare(b.Date, a.Date)
	})
	return groups
}

// IsPredefinedType reports whether t is one of the built-in workout types.
func IsPredefinedType(t string) bool {
	return slices.Contains(models.PredefinedWorkoutTypes, strings.TrimSpace(t))
}

// WorkoutService manages the caller's workout log.
//
// Save and Delete return the reloaded list so the caller always renders
// the server's view after a change.
type WorkoutService interface {
	List(ctx context.Context) ([]models.Workout, error)
	History(ctx context.Context) ([]WorkoutGroup, error)
	Today(ctx context.Context) ([]models.Workout, error)
	TodayCount(ctx context.Context) int
	Save(ctx context.Context, id int64, in models.WorkoutInput) ([]models.Workout, error)
	Delete(ctx context.Context, id int64) ([]models.Workout, error)
	Streak(ctx context.Context) (*models.StreakData, error)
	Rewards(ctx context.Context) ([]models.Reward, error)
}

type workoutService struct {
	api client.WorkoutsAPI
	log logging.Logger
}

func NewWorkoutService(api client.WorkoutsAPI, log logging.Logger) WorkoutService {
	return &workoutService{api: api, log: orDiscard(log)}
}

func (s *workoutService) List(ctx context.Context) ([]models.Workout, error) {
	return s.api.ListWorkouts(ctx, 0, 0)
}

func (s *workoutService) History(ctx context.Context) ([]WorkoutGroup, error) {
	ws, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByDate(ws), nil
}

func (s *workoutService) Today(ctx context.Context) ([]models.Workout, error) {
	return s.api.TodayWorkouts(ctx)
}

// TodayCount is the number of workouts logged today, or 0 when the server
// cannot tell.
func (s *workoutService) TodayCount(ctx context.Context) int {
	ws, err := s.api.TodayWorkouts(ctx)
	if err != nil {
		s.log.Warn(ctx, "today's workouts unavailable", "error", err)
		return 0
	}
	return len(ws)
}

// Save creates a workout when id is 0 and updates it otherwise.
func (s *workoutService) Save(ctx context.Context, id int64, in models.WorkoutInput) ([]models.Workout, error) {
	in.WorkoutType = strings.TrimSpace(in.WorkoutType)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var err error
	if id == 0 {
		_, err = s.api.CreateWorkout(ctx, in)
	} else {
		_, err = s.api.UpdateWorkout(ctx, id, in)
	}
	if err != nil {
		return nil, err
	}
	return s.List(ctx)
}

func (s *workoutService) Delete(ctx context.Context, id int64) ([]models.Workout, error) {
	if err := s.api.DeleteWorkout(ctx, id); err != nil {
		return nil, err
	}
	return s.List(ctx)
}

func (s *workoutService) Streak(ctx context.Context) (*models.StreakData, error) {
	return s.api.Streak(ctx)
}

func (s *workoutService) Rewards(ctx context.Context) ([]models.Reward, error) {
	return s.api.Rewards(ctx)
}

func orDiscard(log logging.Logger) logging.Logger {
	if log == nil {
		return logging.Discard()
	}
	return log
}
