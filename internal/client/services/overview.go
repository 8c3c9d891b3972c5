package services

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/fittrack/internal/client/client"
	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/logging"
	"golang.org/x/sync/errgroup"
)

const (
	overviewWorkouts = 30
	recentWorkouts   = 7
)

// OverviewAPI is what the dashboard overview reads.
type OverviewAPI interface {
	ListWorkouts(ctx context.Context, skip, limit int) ([]models.Workout, error)
	GetMetrics(ctx context.Context) (*models.UserMetrics, error)
	Streak(ctx context.Context) (*models.StreakData, error)
	Rewards(ctx context.Context) ([]models.Reward, error)
}

var _ OverviewAPI = (client.Client)(nil)

// Overview is the dashboard summary.
type Overview struct {
	Workouts []models.Workout
	// Metrics is nil when the user has no profile yet.
	Metrics *models.UserMetrics
	Streak  models.StreakData
	Rewards []models.Reward

	TotalCalories int
	TotalMinutes  int
	// Recent holds up to the seven newest workouts, oldest first.
	Recent []models.Workout
}

// LoadOverview fetches the overview data concurrently. A metrics failure
// only means "no profile"; any other failure fails the load.
func LoadOverview(ctx context.Context, api OverviewAPI, log logging.Logger) (*Overview, error) {
	log = orDiscard(log)
	var ov Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ws, err := api.ListWorkouts(gctx, 0, overviewWorkouts)
		ov.Workouts = ws
		return err
	})
	g.Go(func() error {
		m, err := api.GetMetrics(gctx)
		if err != nil {
			log.Debug(ctx, "overview without metrics", "error", err)
			return nil
		}
		ov.Metrics = m
		return nil
	})
	g.Go(func() error {
		st, err := api.Streak(gctx)
		if err != nil {
			return err
		}
		ov.Streak = *st
		return nil
	})
	g.Go(func() error {
		rs, err := api.Rewards(gctx)
		ov.Rewards = rs
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, w := range ov.Workouts {
		ov.TotalCalories += w.CaloriesBurned
		ov.TotalMinutes += w.Duration
	}
	ov.Recent = slices.Clone(ov.Workouts[:min(recentWorkouts, len(ov.Workouts))])
	slices.Reverse(ov.Recent)
	return &ov, nil
}
