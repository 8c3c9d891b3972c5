package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/go-resty/resty/v2"
)

// DefaultProgressDays is the analysis window used when the caller passes none.
const DefaultProgressDays = 30

func (c *RESTClient) Recommendations(ctx context.Context, prompt string) (*models.AIRecommendation, error) {
	resp, err := c.send(ctx, http.MethodPost, "/ai/recommendations", func(r *resty.Request) {
		r.SetBody(models.AIRequest{Prompt: prompt})
	})
	if err != nil {
		return nil, err
	}
	return decode[models.AIRecommendation](resp)
}

func (c *RESTClient) ProgressAnalysis(ctx context.Context, days int) (*models.ProgressAnalysis, error) {
	if days <= 0 {
		days = DefaultProgressDays
	}
	resp, err := c.send(ctx, http.MethodGet, "/ai/progress-analysis", func(r *resty.Request) {
		r.SetQueryParam("days", strconv.Itoa(days))
	})
	if err != nil {
		return nil, err
	}
	return decode[models.ProgressAnalysis](resp)
}
