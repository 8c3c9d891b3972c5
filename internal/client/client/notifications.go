package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/go-resty/resty/v2"
)

func (c *RESTClient) Notifications(ctx context.Context) ([]models.Notification, error) {
	resp, err := c.send(ctx, http.MethodGet, "/users/notifications", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Notification](resp)
}

func (c *RESTClient) MarkNotificationRead(ctx context.Context, id int64) error {
	_, err := c.send(ctx, http.MethodPut, "/users/notifications/{id}/read", func(r *resty.Request) {
		r.SetPathParam("id", idParam(id))
	})
	return err
}
