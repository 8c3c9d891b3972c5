package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/go-resty/resty/v2"
)

func (c *RESTClient) SaveMetrics(ctx context.Context, in models.MetricsInput) (*models.UserMetrics, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	resp, err := c.send(ctx, http.MethodPost, "/users/metrics", func(r *resty.Request) {
		r.SetBody(in)
	})
	if err != nil {
		return nil, err
	}
	return decode[models.UserMetrics](resp)
}

func (c *RESTClient) GetMetrics(ctx context.Context) (*models.UserMetrics, error) {
	resp, err := c.send(ctx, http.MethodGet, "/users/metrics", nil)
	if err != nil {
		return nil, err
	}
	return decode[models.UserMetrics](resp)
}
