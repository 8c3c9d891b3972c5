package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/go-resty/resty/v2"
)

// DefaultWorkoutsLimit is the page size used when the caller passes none.
const DefaultWorkoutsLimit = 100

func idParam(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (c *RESTClient) CreateWorkout(ctx context.Context, in models.WorkoutInput) (*models.Workout, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	resp, err := c.send(ctx, http.MethodPost, "/workouts", func(r *resty.Request) {
		r.SetBody(in)
	})
	if err != nil {
		return nil, err
	}
	return decode[models.Workout](resp)
}

func (c *RESTClient) ListWorkouts(ctx context.Context, skip, limit int) ([]models.Workout, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultWorkoutsLimit
	}
	resp, err := c.send(ctx, http.MethodGet, "/workouts", func(r *resty.Request) {
		r.SetQueryParam("skip", strconv.Itoa(skip)).
			SetQueryParam("limit", strconv.Itoa(limit))
	})
	if err != nil {
		return nil, err
	}
	return decodeList[models.Workout](resp)
}

func (c *RESTClient) TodayWorkouts(ctx context.Context) ([]models.Workout, error) {
	resp, err := c.send(ctx, http.MethodGet, "/workouts/today", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Workout](resp)
}

func (c *RESTClient) UpdateWorkout(ctx context.Context, id int64, in models.WorkoutInput) (*models.Workout, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	resp, err := c.send(ctx, http.MethodPut, "/workouts/{id}", func(r *resty.Request) {
		r.SetPathParam("id", idParam(id)).SetBody(in)
	})
	if err != nil {
		return nil, err
	}
	return decode[models.Workout](resp)
}

func (c *RESTClient) DeleteWorkout(ctx context.Context, id int64) error {
	_, err := c.send(ctx, http.MethodDelete, "/workouts/{id}", func(r *resty.Request) {
		r.SetPathParam("id", idParam(id))
	})
	return err
}

func (c *RESTClient) Streak(ctx context.Context) (*models.StreakData, error) {
	resp, err := c.send(ctx, http.MethodGet, "/streaks", nil)
	if err != nil {
		return nil, err
	}
	return decode[models.StreakData](resp)
}

func (c *RESTClient) Rewards(ctx context.Context) ([]models.Reward, error) {
	resp, err := c.send(ctx, http.MethodGet, "/rewards", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Reward](resp)
}
