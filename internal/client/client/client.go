package client

import (
	"context"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
)

// TokenSource yields the bearer token to attach to the next request.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenSourceFunc adapts a function to TokenSource.
type TokenSourceFunc func(ctx context.Context) (string, error)

func (f TokenSourceFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

type AuthAPI interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

type MetricsAPI interface {
	SaveMetrics(ctx context.Context, in models.MetricsInput) (*models.UserMetrics, error)
	GetMetrics(ctx context.Context) (*models.UserMetrics, error)
}

type WorkoutsAPI interface {
	CreateWorkout(ctx context.Context, in models.WorkoutInput) (*models.Workout, error)
	ListWorkouts(ctx context.Context, skip, limit int) ([]models.Workout, error)
	TodayWorkouts(ctx context.Context) ([]models.Workout, error)
	UpdateWorkout(ctx context.Context, id int64, in models.WorkoutInput) (*models.Workout, error)
	DeleteWorkout(ctx context.Context, id int64) error
	Streak(ctx context.Context) (*models.StreakData, error)
	Rewards(ctx context.Context) ([]models.Reward, error)
}

type AIAPI interface {
	Recommendations(ctx context.Context, prompt string) (*models.AIRecommendation, error)
	ProgressAnalysis(ctx context.Context, days int) (*models.ProgressAnalysis, error)
}

type NotificationsAPI interface {
	Notifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
}

type AdminAPI interface {
	AdminUsers(ctx context.Context) ([]models.User, error)
	AdminDeleteUser(ctx context.Context, id int64) error
	AdminSendNotification(ctx context.Context, userID int64, message string) error
	AdminAnalytics(ctx context.Context) (*models.Analytics, error)
	AdminUserStats(ctx context.Context, id int64) (*models.UserStats, error)
	AdminUserWorkouts(ctx context.Context, id int64) ([]models.Workout, error)
}

// Client is the full FitTrack API surface.
type Client interface {
	AuthAPI
	MetricsAPI
	WorkoutsAPI
	AIAPI
	NotificationsAPI
	AdminAPI
}
