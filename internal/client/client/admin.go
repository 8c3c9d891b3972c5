package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/go-resty/resty/v2"
)

// Admin endpoints. The server enforces the admin role; the client only uses
// the cached is_admin flag to decide which commands to offer.

func (c *RESTClient) AdminUsers(ctx context.Context) ([]models.User, error) {
	resp, err := c.send(ctx, http.MethodGet, "/admin/users", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.User](resp)
}

func (c *RESTClient) AdminDeleteUser(ctx context.Context, id int64) error {
	_, err := c.send(ctx, http.MethodDelete, "/admin/users/{id}", func(r *resty.Request) {
		r.SetPathParam("id", idParam(id))
	})
	return err
}

func (c *RESTClient) AdminSendNotification(ctx context.Context, userID int64, message string) error {
	_, err := c.send(ctx, http.MethodPost, "/admin/notifications", func(r *resty.Request) {
		r.SetBody(models.NotificationInput{UserID: userID, Message: message})
	})
	return err
}

func (c *RESTClient) AdminAnalytics(ctx context.Context) (*models.Analytics, error) {
	resp, err := c.send(ctx, http.MethodGet, "/admin/analytics", nil)
	if err != nil {
		return nil, err
	}
	return decode[models.Analytics](resp)
}

func (c *RESTClient) AdminUserStats(ctx context.Context, id int64) (*models.UserStats, error) {
	resp, err := c.send(ctx, http.MethodGet, "/admin/users/{id}/stats", func(r *resty.Request) {
		r.SetPathParam("id", idParam(id))
	})
	if err != nil {
		return nil, err
	}
	return decode[models.UserStats](resp)
}

func (c *RESTClient) AdminUserWorkouts(ctx context.Context, id int64) ([]models.Workout, error) {
	resp, err := c.send(ctx, http.MethodGet, "/admin/users/{id}/workouts", func(r *resty.Request) {
		r.SetPathParam("id", idParam(id))
	})
	if err != nil {
		return nil, err
	}
	return decodeList[models.Workout](resp)
}
