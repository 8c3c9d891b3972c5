package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/client/client"
	"github.com/dmitrijs2005/fittrack/internal/client/models"
)

// fakeClient embeds client.Client so each test only fills in what it uses;
// anything else panics.
type fakeClient struct {
	client.Client

	mu sync.Mutex

	workouts    []models.Workout
	listErr     error
	listCalls   int
	lastSkip    int
	lastLimit   int
	today       []models.Workout
	todayErr    error
	created     []models.WorkoutInput
	updated     map[int64]models.WorkoutInput
	deleted     []int64
	writeErr    error
	streak      *models.StreakData
	streakErr   error
	rewards     []models.Reward
	rewardsErr  error
	metrics     *models.UserMetrics
	metricsErr  error
	savedInput  *models.MetricsInput
	notes       []models.Notification
	notesCalls  int
	markedRead  []int64
	markErr     error
	prompts     []string
	aiResp      *models.AIRecommendation
	progress    *models.ProgressAnalysis
	progressArg int
	users       []models.User
	usersCalls  int
	deleteErr   error
	sent        []models.NotificationInput
	analytics   *models.Analytics
	stats       map[int64]*models.UserStats
}

func (f *fakeClient) ListWorkouts(_ context.Context, skip, limit int) ([]models.Workout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	f.lastSkip, f.lastLimit = skip, limit
	return f.workouts, f.listErr
}

func (f *fakeClient) TodayWorkouts(context.Context) ([]models.Workout, error) {
	return f.today, f.todayErr
}

func (f *fakeClient) CreateWorkout(_ context.Context, in models.WorkoutInput) (*models.Workout, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	f.created = append(f.created, in)
	return &models.Workout{ID: int64(len(f.created)), WorkoutType: in.WorkoutType}, nil
}

func (f *fakeClient) UpdateWorkout(_ context.Context, id int64, in models.WorkoutInput) (*models.Workout, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	if f.updated == nil {
		f.updated = map[int64]models.WorkoutInput{}
	}
	f.updated[id] = in
	return &models.Workout{ID: id, WorkoutType: in.WorkoutType}, nil
}

func (f *fakeClient) DeleteWorkout(_ context.Context, id int64) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeClient) Streak(context.Context) (*models.StreakData, error) {
	return f.streak, f.streakErr
}

func (f *fakeClient) Rewards(context.Context) ([]models.Reward, error) {
	return f.rewards, f.rewardsErr
}

func (f *fakeClient) GetMetrics(context.Context) (*models.UserMetrics, error) {
	return f.metrics, f.metricsErr
}

func (f *fakeClient) SaveMetrics(_ context.Context, in models.MetricsInput) (*models.UserMetrics, error) {
	f.savedInput = &in
	return &models.UserMetrics{Height: in.Height, Weight: in.Weight, Age: in.Age}, nil
}

func (f *fakeClient) Notifications(context.Context) ([]models.Notification, error) {
	f.notesCalls++
	return append([]models.Notification(nil), f.notes...), nil
}

func (f *fakeClient) MarkNotificationRead(_ context.Context, id int64) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.markedRead = append(f.markedRead, id)
	return nil
}

func (f *fakeClient) Recommendations(_ context.Context, prompt string) (*models.AIRecommendation, error) {
	f.prompts = append(f.prompts, prompt)
	return f.aiResp, nil
}

func (f *fakeClient) ProgressAnalysis(_ context.Context, days int) (*models.ProgressAnalysis, error) {
	f.progressArg = days
	return f.progress, nil
}

func (f *fakeClient) AdminUsers(context.Context) ([]models.User, error) {
	f.usersCalls++
	return f.users, nil
}

func (f *fakeClient) AdminDeleteUser(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	kept := f.users[:0:0]
	for _, u := range f.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	f.users = kept
	return nil
}

func (f *fakeClient) AdminSendNotification(_ context.Context, userID int64, message string) error {
	f.sent = append(f.sent, models.NotificationInput{UserID: userID, Message: message})
	return nil
}

func (f *fakeClient) AdminAnalytics(context.Context) (*models.Analytics, error) {
	return f.analytics, nil
}

func (f *fakeClient) AdminUserStats(_ context.Context, id int64) (*models.UserStats, error) {
	s, ok := f.stats[id]
	if !ok {
		return nil, &client.APIError{StatusCode: 404, Detail: "User not found"}
	}
	return s, nil
}

func (f *fakeClient) AdminUserWorkouts(context.Context, int64) ([]models.Workout, error) {
	return f.workouts, nil
}

func workout(id int64, day string, calories, minutes int) models.Workout {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return models.Workout{
		ID:             id,
		WorkoutType:    "Running",
		Duration:       minutes,
		CaloriesBurned: calories,
		Intensity:      models.IntensityModerate,
		Date:           models.NewTime(d.Add(time.Duration(id) * time.Hour)),
	}
}
