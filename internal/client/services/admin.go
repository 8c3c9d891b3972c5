package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/fittrack/internal/client/client"
	"github.com/dmitrijs2005/fittrack/internal/client/models"
)

var ErrEmptyMessage = errors.New("message must not be empty")

// AdminConsole backs the admin surface. Every call is authorized by the
// server; a non-admin token gets client.ErrForbidden.
type AdminConsole struct {
	api client.AdminAPI
}

func NewAdminConsole(api client.AdminAPI) *AdminConsole {
	return &AdminConsole{api: api}
}

func (a *AdminConsole) Users(ctx context.Context) ([]models.User, error) {
	return a.api.AdminUsers(ctx)
}

// DeleteUser removes a user and returns the reloaded user list.
func (a *AdminConsole) DeleteUser(ctx context.Context, id int64) ([]models.User, error) {
	if err := a.api.AdminDeleteUser(ctx, id); err != nil {
		return nil, err
	}
	return a.api.AdminUsers(ctx)
}

func (a *AdminConsole) Notify(ctx context.Context, userID int64, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return ErrEmptyMessage
	}
	return a.api.AdminSendNotification(ctx, userID, message)
}

func (a *AdminConsole) Analytics(ctx context.Context) (*models.Analytics, error) {
	return a.api.AdminAnalytics(ctx)
}

func (a *AdminConsole) UserStats(ctx context.Context, id int64) (*models.UserStats, error) {
	return a.api.AdminUserStats(ctx, id)
}

func (a *AdminConsole) UserWorkouts(ctx context.Context, id int64) ([]models.Workout, error) {
	return a.api.AdminUserWorkouts(ctx, id)
}
